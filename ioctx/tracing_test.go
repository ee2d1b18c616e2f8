package ioctx

import (
	"errors"
	"io/fs"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestTracingRecordsCompletedCalls(t *testing.T) {
	Convey("TracingIO over a seeded FakeIO", t, func() {
		fake := NewFakeIO(WithFileContents(map[string][]byte{
			"/t.txt": []byte("d"),
		}))
		tracing := NewTracingIO(fake)

		Convey("Read, write, log produce exactly three records in order", func() {
			content, err := tracing.ReadFile("/t.txt")
			So(err, ShouldBeNil)
			So(content, ShouldResemble, []byte("d"))

			So(tracing.WriteFile("/out.txt", []byte("output data")), ShouldBeNil)
			So(tracing.Log("info", "test log message"), ShouldBeNil)

			trace := tracing.Trace()
			So(trace, ShouldHaveLength, 3)

			So(trace[0].Operation, ShouldEqual, "read_file")
			So(trace[0].Args["path"], ShouldEqual, "/t.txt")
			So(trace[0].Result, ShouldResemble, []byte("d"))

			So(trace[1].Operation, ShouldEqual, "write_file")
			So(trace[1].Args["path"], ShouldEqual, "/out.txt")
			So(trace[1].Args["content_size"], ShouldEqual, len("output data"))
			So(trace[1].Result, ShouldBeNil)

			So(trace[2].Operation, ShouldEqual, "log")
			So(trace[2].Args["level"], ShouldEqual, "info")
			So(trace[2].Args["message"], ShouldEqual, "test log message")
			So(trace[2].Result, ShouldBeNil)
		})

		Convey("A failed delegated call leaves no record", func() {
			_, err := tracing.ReadFile("/absent.txt")
			So(errors.Is(err, fs.ErrNotExist), ShouldBeTrue)
			So(tracing.Trace(), ShouldBeEmpty)
		})

		Convey("The trace extends across repeated observations", func() {
			So(tracing.Log("info", "first"), ShouldBeNil)
			So(tracing.Trace(), ShouldHaveLength, 1)

			So(tracing.Log("info", "second"), ShouldBeNil)
			trace := tracing.Trace()
			So(trace, ShouldHaveLength, 2)
			So(trace[0].Args["message"], ShouldEqual, "first")
			So(trace[1].Args["message"], ShouldEqual, "second")
		})

		Convey("The wrapped backend still sees every effect", func() {
			So(tracing.WriteFile("/via-tracer.txt", []byte("x")), ShouldBeNil)
			So(fake.WrittenFiles["/via-tracer.txt"], ShouldResemble, []byte("x"))
		})
	})
}

func TestTracingHTTPAndCommands(t *testing.T) {
	Convey("TracingIO records HTTP and process operations verbatim", t, func() {
		fake := NewFakeIO(
			WithHTTPResponses(map[string]HTTPResponse{
				"https://x/data": {StatusCode: 200, Text: "ok"},
			}),
			WithCommandResults(map[string]CommandResult{
				"ls -la": {ReturnCode: 0, Stdout: "total 0\n"},
			}),
		)
		tracing := NewTracingIO(fake)

		Convey("http_get carries url, options, and the response", func() {
			opts := RequestOptions{Headers: map[string]string{"Accept": "text/plain"}}
			resp, err := tracing.HTTPGet("https://x/data", opts)
			So(err, ShouldBeNil)

			trace := tracing.Trace()
			So(trace, ShouldHaveLength, 1)
			So(trace[0].Operation, ShouldEqual, "http_get")
			So(trace[0].Args["url"], ShouldEqual, "https://x/data")
			So(trace[0].Args["options"], ShouldResemble, opts)
			So(trace[0].Result, ShouldResemble, resp)
		})

		Convey("http_post carries the payload", func() {
			resp, err := tracing.HTTPPost("https://x/data", "payload", RequestOptions{})
			So(err, ShouldBeNil)

			trace := tracing.Trace()
			So(trace[0].Operation, ShouldEqual, "http_post")
			So(trace[0].Args["data"], ShouldEqual, "payload")
			So(trace[0].Result, ShouldResemble, resp)
		})

		Convey("execute_command carries argv and the result", func() {
			result, err := tracing.ExecuteCommand([]string{"ls", "-la"})
			So(err, ShouldBeNil)

			trace := tracing.Trace()
			So(trace[0].Operation, ShouldEqual, "execute_command")
			So(trace[0].Args["cmd"], ShouldResemble, []string{"ls", "-la"})
			So(trace[0].Result, ShouldResemble, result)
		})

		Convey("A fixture miss is not traced", func() {
			_, err := tracing.ExecuteCommand([]string{"who", "ami"})
			So(errors.Is(err, ErrLookupMiss), ShouldBeTrue)
			So(tracing.Trace(), ShouldBeEmpty)
		})
	})
}

func TestTracingComposition(t *testing.T) {
	Convey("Decorators wrap uniformly, including other decorators", t, func() {
		fake := NewFakeIO()
		inner := NewTracingIO(fake)
		outer := NewTracingIO(inner)

		So(outer.Log("debug", "nested"), ShouldBeNil)

		So(inner.Trace(), ShouldHaveLength, 1)
		So(outer.Trace(), ShouldHaveLength, 1)
		So(fake.Logs, ShouldHaveLength, 1)
	})
}

func TestTraceLengthMatchesCompletedCalls(t *testing.T) {
	Convey("N successful calls yield a trace of length N, in order", t, func() {
		fake := NewFakeIO()
		tracing := NewTracingIO(fake)

		const n = 25
		for i := 0; i < n; i++ {
			So(tracing.WriteFile("/f.txt", []byte{byte(i)}), ShouldBeNil)
		}

		trace := tracing.Trace()
		So(trace, ShouldHaveLength, n)
		for _, entry := range trace {
			So(entry.Operation, ShouldEqual, "write_file")
		}
	})
}
