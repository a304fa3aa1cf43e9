package auth

import (
	"testing"

	"github.com/conatus/literal-tools/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/zalando/go-keyring"
)

func TestFileStore(t *testing.T) {
	Convey("Given a file store", t, func() {
		filesystem.SetMemMapFs()
		store := NewFileStore(tokenPath)

		Convey("An absent file means no token", func() {
			_, err := store.Load()
			So(err, ShouldEqual, ErrNoToken)
		})

		Convey("An empty file means no token", func() {
			So(filesystem.API().WriteFile(tokenPath, []byte("\n"), 0o600), ShouldBeNil)
			_, err := store.Load()
			So(err, ShouldEqual, ErrNoToken)
		})

		Convey("The token is stored as plain text", func() {
			So(store.Save("abc"), ShouldBeNil)
			So(string(lo.Must(filesystem.API().ReadFile(tokenPath))), ShouldEqual, "abc\n")
			So(lo.Must(store.Load()), ShouldEqual, "abc")
		})

		Convey("A JSON token document is accepted", func() {
			So(filesystem.API().WriteFile(tokenPath, []byte(`{"token": "legacy"}`), 0o600), ShouldBeNil)
			So(lo.Must(store.Load()), ShouldEqual, "legacy")
		})

		Convey("A new token overwrites the old one", func() {
			So(store.Save("first"), ShouldBeNil)
			So(store.Save("second"), ShouldBeNil)
			So(lo.Must(store.Load()), ShouldEqual, "second")
		})

		Convey("Empty tokens are refused", func() {
			So(store.Save("  "), ShouldNotBeNil)
		})

		Convey("Deleting a missing file succeeds", func() {
			So(store.Delete(), ShouldBeNil)
		})
	})
}

func TestKeyringStore(t *testing.T) {
	Convey("Given a keyring store", t, func() {
		keyring.MockInit()
		store := NewKeyringStore()

		Convey("Nothing is stored initially", func() {
			_, err := store.Load()
			So(err, ShouldEqual, ErrNoToken)
		})

		Convey("Saved tokens can be loaded and deleted", func() {
			So(store.Save("abc"), ShouldBeNil)
			So(lo.Must(store.Load()), ShouldEqual, "abc")
			So(store.Delete(), ShouldBeNil)
			_, err := store.Load()
			So(err, ShouldEqual, ErrNoToken)
		})

		Convey("Deleting twice succeeds", func() {
			So(store.Delete(), ShouldBeNil)
		})
	})
}

func TestNewStore(t *testing.T) {
	Convey("NewStore", t, func() {
		filesystem.SetMemMapFs()

		Convey("Defaults to the file store", func() {
			store, err := NewStore("")
			So(err, ShouldBeNil)
			So(store, ShouldHaveSameTypeAs, &FileStore{})
		})

		Convey("Selects the keyring store", func() {
			store, err := NewStore(StoreKeyring)
			So(err, ShouldBeNil)
			So(store, ShouldHaveSameTypeAs, &KeyringStore{})
		})

		Convey("Rejects unknown stores", func() {
			_, err := NewStore("vault")
			So(err, ShouldNotBeNil)
		})
	})
}
