package ioctx

import (
	"errors"
	"io/fs"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFakeReadFile(t *testing.T) {
	Convey("FakeIO.ReadFile", t, func() {
		fake := NewFakeIO(WithFileContents(map[string][]byte{
			"/t.txt": []byte("d"),
		}))

		Convey("Should answer from fixtures by exact path", func() {
			content, err := fake.ReadFile("/t.txt")
			So(err, ShouldBeNil)
			So(content, ShouldResemble, []byte("d"))
		})

		Convey("Should fail NotFound for an absent path", func() {
			_, err := fake.ReadFile("/missing.txt")
			So(err, ShouldNotBeNil)
			So(errors.Is(err, fs.ErrNotExist), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "/missing.txt")
		})

		Convey("Should name the closest fixture on a near miss", func() {
			_, err := fake.ReadFile("/t.tx")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "did you mean")
			So(err.Error(), ShouldContainSubstring, "/t.txt")
		})

		Convey("Should not serve paths that were only written", func() {
			So(fake.WriteFile("/w.txt", []byte("x")), ShouldBeNil)
			_, err := fake.ReadFile("/w.txt")
			So(errors.Is(err, fs.ErrNotExist), ShouldBeTrue)
		})
	})
}

func TestFakeWriteFile(t *testing.T) {
	Convey("FakeIO.WriteFile", t, func() {
		fake := NewFakeIO()

		Convey("Should record the payload and never fail", func() {
			So(fake.WriteFile("/out.txt", []byte("first")), ShouldBeNil)
			So(fake.WrittenFiles["/out.txt"], ShouldResemble, []byte("first"))
		})

		Convey("Should replace a prior payload for the same path", func() {
			So(fake.WriteFile("/out.txt", []byte("first")), ShouldBeNil)
			So(fake.WriteFile("/out.txt", []byte("second")), ShouldBeNil)
			So(fake.WrittenFiles["/out.txt"], ShouldResemble, []byte("second"))
			So(fake.WrittenFiles, ShouldHaveLength, 1)
		})
	})
}

func TestFakeHTTP(t *testing.T) {
	Convey("FakeIO HTTP operations", t, func() {
		ok := HTTPResponse{StatusCode: 200, Text: "ok"}
		created := HTTPResponse{StatusCode: 201, Text: "created"}

		Convey("HTTPGet answers by exact URL", func() {
			fake := NewFakeIO(WithHTTPResponses(map[string]HTTPResponse{
				"https://x/data": ok,
			}))

			resp, err := fake.HTTPGet("https://x/data", RequestOptions{})
			So(err, ShouldBeNil)
			So(resp, ShouldResemble, ok)
		})

		Convey("HTTPGet misses name the URL", func() {
			fake := NewFakeIO()
			_, err := fake.HTTPGet("https://x/other", RequestOptions{})
			So(errors.Is(err, ErrLookupMiss), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "https://x/other")
		})

		Convey("HTTPPost prefers the composite key", func() {
			fake := NewFakeIO(WithHTTPResponses(map[string]HTTPResponse{
				PostKey("https://x/submit", "payload"): created,
				"https://x/submit":                     ok,
			}))

			resp, err := fake.HTTPPost("https://x/submit", "payload", RequestOptions{})
			So(err, ShouldBeNil)
			So(resp, ShouldResemble, created)
		})

		Convey("HTTPPost falls back to the bare URL", func() {
			fake := NewFakeIO(WithHTTPResponses(map[string]HTTPResponse{
				"https://x/submit": ok,
			}))

			resp, err := fake.HTTPPost("https://x/submit", "anything", RequestOptions{})
			So(err, ShouldBeNil)
			So(resp, ShouldResemble, ok)
		})

		Convey("HTTPPost misses name URL and payload", func() {
			fake := NewFakeIO()
			_, err := fake.HTTPPost("https://x/submit", "payload", RequestOptions{})
			So(errors.Is(err, ErrLookupMiss), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "https://x/submit")
			So(err.Error(), ShouldContainSubstring, "payload")
		})
	})
}

func TestFakeExecuteCommand(t *testing.T) {
	Convey("FakeIO.ExecuteCommand", t, func() {
		fake := NewFakeIO(WithCommandResults(map[string]CommandResult{
			"ls -la": {ReturnCode: 0, Stdout: "total 0\n"},
		}))

		Convey("Should match argv joined with single spaces", func() {
			result, err := fake.ExecuteCommand([]string{"ls", "-la"})
			So(err, ShouldBeNil)
			So(result.Stdout, ShouldEqual, "total 0\n")
		})

		Convey("Should miss on any other spacing or quoting", func() {
			_, err := fake.ExecuteCommand([]string{"ls", " -la"})
			So(errors.Is(err, ErrLookupMiss), ShouldBeTrue)

			_, err = fake.ExecuteCommand([]string{"ls -la"})
			// Same joined form, so the single-token argv matches the fixture too.
			So(err, ShouldBeNil)
		})

		Convey("Misses name the joined command", func() {
			_, err := fake.ExecuteCommand([]string{"rm", "-rf", "/"})
			So(errors.Is(err, ErrLookupMiss), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, `"rm -rf /"`)
		})
	})
}

func TestFakeLog(t *testing.T) {
	Convey("FakeIO.Log", t, func() {
		fake := NewFakeIO()

		Convey("Should append entries in order and never fail", func() {
			So(fake.Log("info", "one"), ShouldBeNil)
			So(fake.Log("made-up-level", "two"), ShouldBeNil)

			So(fake.Logs, ShouldResemble, []LogEntry{
				{Level: "info", Message: "one"},
				{Level: "made-up-level", Message: "two"},
			})
		})
	})
}

func TestFakeFixtureIsolation(t *testing.T) {
	Convey("Fixtures are frozen at construction", t, func() {
		seed := map[string][]byte{"/a.txt": []byte("a")}
		fake := NewFakeIO(WithFileContents(seed))

		// Mutating the seed map after construction must not leak into the fake.
		seed["/b.txt"] = []byte("b")

		_, err := fake.ReadFile("/b.txt")
		So(errors.Is(err, fs.ErrNotExist), ShouldBeTrue)
	})
}
