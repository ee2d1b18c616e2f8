package version

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Compare", t, func() {
		Convey("Should order by semantic precedence", func() {
			result, err := Compare("1.2.3", "1.2.2")
			So(err, ShouldBeNil)
			So(result, ShouldEqual, 1)

			result, err = Compare("0.9.9", "1.0.0")
			So(err, ShouldBeNil)
			So(result, ShouldEqual, -1)

			result, err = Compare("2.0.0", "2.0.0")
			So(err, ShouldBeNil)
			So(result, ShouldEqual, 0)
		})

		Convey("Should tolerate a leading v", func() {
			result, err := Compare("v1.1.0", "1.0.5")
			So(err, ShouldBeNil)
			So(result, ShouldEqual, 1)
		})

		Convey("Should reject malformed input", func() {
			_, err := Compare("not-a-version", "1.0.0")
			So(err, ShouldNotBeNil)
		})
	})
}
