package version

import "testing"

func TestGetVersion_NeverEmpty(t *testing.T) {
	if GetVersion() == "" {
		t.Error("GetVersion returned an empty string")
	}
}

func TestGetInfo(t *testing.T) {
	info := GetInfo()
	if info.Package != "varcleaner" {
		t.Errorf("Package = %q, want varcleaner", info.Package)
	}
	if info.Version == "" {
		t.Error("Info.Version is empty")
	}
}

func TestGetFullVersion_ContainsVersion(t *testing.T) {
	full := GetFullVersion()
	if full == "" {
		t.Error("GetFullVersion returned an empty string")
	}
}
