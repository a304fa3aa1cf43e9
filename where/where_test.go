package where

import (
	"path/filepath"
	"testing"

	"github.com/conatus/literal-tools/constant"
	"github.com/conatus/literal-tools/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Use in-memory filesystem for tests to avoid creating real directories
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			path := Logs()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})
	})
}

func TestTokenOverride(t *testing.T) {
	Convey("Given LITERAL_TOKEN_PATH is set", t, func() {
		t.Setenv(EnvTokenPath, "/tmp/custom/token")

		Convey("Token() returns it verbatim", func() {
			So(Token(), ShouldEqual, "/tmp/custom/token")
		})
	})
}

func TestTokenDefault(t *testing.T) {
	Convey("Given no override", t, func() {
		Convey("Token() points at the fixed dotfile", func() {
			So(filepath.Base(Token()), ShouldEqual, constant.TokenFile)
		})
	})
}
