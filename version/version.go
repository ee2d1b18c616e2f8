// Package version provides unified mechanisms for application version tracking, update discovery, and compatibility validation.
package version

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/ioctx-cli/ioctx/filesystem"
	"github.com/ioctx-cli/ioctx/ioctx"
	"github.com/ioctx-cli/ioctx/where"
	"github.com/metafates/gache"
)

var versionCacher = gache.New[string](&gache.Options{
	Path:       filepath.Join(where.Cache(), "version.json"),
	Lifetime:   time.Hour * 24 * 2,
	FileSystem: &filesystem.GacheFs{},
})

// Latest retrieves the most recent stable application version identifier from the remote update registry.
// The lookup runs through a real IO context, so it obeys the same transport configuration as every
// other network effect, and the result is cached for rate-limit mitigation.
func Latest() (version string, err error) {
	ver, expired, err := versionCacher.Get()
	if err != nil {
		return "", err
	}

	if !expired && ver != "" {
		return ver, nil
	}

	ctx := ioctx.NewRealIO()
	resp, err := ctx.HTTPGet(
		"https://api.github.com/repos/ioctx-cli/ioctx/releases/latest",
		ioctx.RequestOptions{Timeout: 15 * time.Second},
	)
	if err != nil {
		return
	}

	if resp.StatusCode != 200 {
		err = fmt.Errorf("unexpected status %d from release registry", resp.StatusCode)
		return
	}

	var release struct {
		TagName string `json:"tag_name"`
	}

	err = json.Unmarshal([]byte(resp.Text), &release)
	if err != nil {
		return
	}

	if release.TagName == "" {
		err = errors.New("empty tag name")
		return
	}

	// Sanitization: Normalize the release identifier by stripping the 'v' prefix if present.
	version = strings.TrimPrefix(release.TagName, "v")
	_ = versionCacher.Set(version)
	return
}
