package utils

import (
	"fmt"
	"strings"

	"github.com/PolyglAI/PolyglAI/pkg/app/moderation"
	"github.com/avct/uasurfer"
)

const unknown = "Unknown"

// ParseClientInfo describes the learner's client from the User-Agent and
// Accept-Language headers. It returns nil when both headers are empty.
func ParseClientInfo(userAgent, acceptLanguage string) *moderation.ClientInfo {
	userAgent = strings.TrimSpace(userAgent)
	locale := PrimaryLocale(acceptLanguage)
	if userAgent == "" && locale == "" {
		return nil
	}

	info := &moderation.ClientInfo{
		Browser: unknown,
		OS:      unknown,
		Device:  unknown,
		Locale:  locale,
	}
	if userAgent == "" {
		return info
	}

	ua := uasurfer.Parse(userAgent)
	info.Device = deviceName(ua.DeviceType)
	if ua.OS.Name != uasurfer.OSUnknown {
		info.OS = withVersion(ua.OS.Name.StringTrimPrefix(), ua.OS.Version)
	}
	if ua.Browser.Name != uasurfer.BrowserUnknown {
		info.Browser = withVersion(ua.Browser.Name.StringTrimPrefix(), ua.Browser.Version)
	}
	return info
}

// PrimaryLocale returns the first language tag of an Accept-Language value
// without its quality parameter.
func PrimaryLocale(acceptLanguage string) string {
	first, _, _ := strings.Cut(acceptLanguage, ",")
	tag, _, _ := strings.Cut(first, ";")
	return strings.TrimSpace(tag)
}

func deviceName(device uasurfer.DeviceType) string {
	switch device {
	case uasurfer.DeviceComputer:
		return "Computer"
	case uasurfer.DeviceTablet:
		return "Tablet"
	case uasurfer.DevicePhone:
		return "Phone"
	case uasurfer.DeviceConsole:
		return "Console"
	case uasurfer.DeviceWearable:
		return "Wearable"
	case uasurfer.DeviceTV:
		return "TV"
	default:
		return unknown
	}
}

func withVersion(name string, v uasurfer.Version) string {
	if v.Major == 0 && v.Minor == 0 {
		return name
	}
	return fmt.Sprintf("%s %d.%d", name, v.Major, v.Minor)
}
