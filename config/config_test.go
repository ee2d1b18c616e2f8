package config

import (
	"testing"

	"github.com/ioctx-cli/ioctx/filesystem"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				val := viper.Get(name)
				So(val, ShouldNotBeNil)
			}
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("logs.level")
			So(result, ShouldEqual, "logs_level")
		})

		Convey("Env names carry the application prefix", func() {
			field := Default["http.timeout"]
			So(field.Env(), ShouldEqual, "IOCTX_HTTP_TIMEOUT")
		})
	})
}
