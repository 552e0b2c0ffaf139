package platform

import (
	"strconv"
	"strings"
	"sync"

	"github.com/go-drift/datetimepicker/pkg/errors"
	"golang.org/x/mod/semver"
)

// DeviceInfo exposes facts about the running OS. The system version is
// fetched from native once and cached, since it is constant per process.
type DeviceInfo struct {
	mu       sync.Mutex
	version  string
	resolved bool
	channel  *MethodChannel
}

// Device is the process-wide device info.
var Device = &DeviceInfo{channel: NewMethodChannel("drift/device")}

// SystemVersion returns the OS version string reported by native
// (e.g., "17.2.1"), or "" when the platform is unavailable.
func (d *DeviceInfo) SystemVersion() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.resolved {
		return d.version
	}

	result, err := d.channel.Invoke("getSystemVersion", nil)
	if err != nil {
		errors.Report(&errors.DriftError{
			Op:      "platform.DeviceInfo.SystemVersion",
			Kind:    errors.KindPlatform,
			Channel: d.channel.Name(),
			Err:     err,
		})
		// Retry on the next call once a bridge is installed.
		return ""
	}

	switch v := result.(type) {
	case string:
		d.version = v
	case map[string]any:
		d.version, _ = v["version"].(string)
	}
	d.resolved = true
	return d.version
}

// SetSystemVersion overrides the reported OS version. Hosts that already know
// the version at startup can avoid the native round trip; tests use it to
// simulate older releases.
func (d *DeviceInfo) SetSystemVersion(version string) {
	d.mu.Lock()
	d.version = version
	d.resolved = true
	d.mu.Unlock()
}

func (d *DeviceInfo) reset() {
	d.mu.Lock()
	d.version = ""
	d.resolved = false
	d.mu.Unlock()
}

// MajorVersion extracts the major component of an OS version string such as
// "13", "14.2" or "16.4.1". Strings that are not semver-like fall back to
// their leading decimal digits ("13.4.1.2" yields 13). It reports false when
// no major version can be read.
func MajorVersion(version string) (int, bool) {
	v := strings.TrimPrefix(strings.TrimSpace(version), "v")
	if v == "" {
		return 0, false
	}

	if canonical := "v" + v; semver.IsValid(canonical) {
		major, err := strconv.Atoi(strings.TrimPrefix(semver.Major(canonical), "v"))
		return major, err == nil
	}

	end := 0
	for end < len(v) && v[end] >= '0' && v[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	major, err := strconv.Atoi(v[:end])
	return major, err == nil
}
