package open

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBrowser(t *testing.T) {
	Convey("Given a link that is not a web page", t, func() {
		Convey("Then it is refused before anything is started", func() {
			So(Browser("file:///etc/passwd"), ShouldNotBeNil)
			So(Browser("not a url"), ShouldNotBeNil)
		})
	})
}

func TestCommand(t *testing.T) {
	Convey("Given a supported platform", t, func() {
		Convey("Then the platform opener is used", func() {
			cmd, ok := command("darwin", "https://literal.club")
			So(ok, ShouldBeTrue)
			So(cmd.Args, ShouldResemble, []string{"open", "https://literal.club"})

			cmd, ok = command("linux", "https://literal.club")
			So(ok, ShouldBeTrue)
			So(cmd.Args[0], ShouldEqual, "xdg-open")
		})
	})

	Convey("Given an unknown platform", t, func() {
		_, ok := command("plan9", "https://literal.club")
		So(ok, ShouldBeFalse)
	})
}
