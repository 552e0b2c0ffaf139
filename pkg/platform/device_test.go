package platform

import "testing"

func TestMajorVersion(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"13", 13, true},
		{"14.0", 14, true},
		{"16.4.1", 16, true},
		{" 17.2 ", 17, true},
		{"v15.1", 15, true},
		{"13.4.1.2", 13, true},
		{"14beta", 14, true},
		{"", 0, false},
		{"abc", 0, false},
		{"-3", 0, false},
	}
	for _, tt := range tests {
		got, ok := MajorVersion(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("MajorVersion(%q) = %d, %v, want %d, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestSystemVersion_QueriedOnceAndCached(t *testing.T) {
	bridge := setupTestBridge(t)
	bridge.respond = func(channel, method string, args any) (any, error) {
		if channel == "drift/device" && method == "getSystemVersion" {
			return "16.4", nil
		}
		return nil, nil
	}

	if got := Device.SystemVersion(); got != "16.4" {
		t.Fatalf("SystemVersion() = %q, want 16.4", got)
	}
	Device.SystemVersion()

	count := 0
	for _, c := range bridge.calls {
		if c.method == "getSystemVersion" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("getSystemVersion calls = %d, want 1", count)
	}
}

func TestSetSystemVersion_Overrides(t *testing.T) {
	setupTestBridge(t)
	Device.SetSystemVersion("13.7")
	if got := Device.SystemVersion(); got != "13.7" {
		t.Errorf("SystemVersion() = %q, want 13.7", got)
	}
}
