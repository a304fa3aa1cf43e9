package filesystem

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestWritePrivate(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		SetMemMapFs()

		Convey("WritePrivate creates the file with owner-only permissions", func() {
			So(WritePrivate("/home/reader/nested/secret", []byte("abc")), ShouldBeNil)

			info := lo.Must(API().Stat("/home/reader/nested/secret"))
			So(info.Mode().Perm(), ShouldEqual, PrivateMode)
			So(string(lo.Must(API().ReadFile("/home/reader/nested/secret"))), ShouldEqual, "abc")
		})

		Convey("WritePrivate overwrites existing content", func() {
			So(WritePrivate("/secret", []byte("first")), ShouldBeNil)
			So(WritePrivate("/secret", []byte("second")), ShouldBeNil)
			So(string(lo.Must(API().ReadFile("/secret"))), ShouldEqual, "second")
		})
	})
}
