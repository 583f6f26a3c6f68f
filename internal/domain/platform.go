package domain

import (
	"strings"

	"github.com/pkg/errors"
)

// Platform identifies a supported marketplace.
type Platform string

const (
	// PlatformSteam Steam Community Market.
	PlatformSteam Platform = "steam"
	// PlatformCSFloat CSFloat marketplace.
	PlatformCSFloat Platform = "csfloat"
	// PlatformBuff163 BUFF163 marketplace.
	PlatformBuff163 Platform = "buff163"
	// PlatformSkinport Skinport marketplace.
	PlatformSkinport Platform = "skinport"
	// PlatformCSMoney CS.MONEY marketplace.
	PlatformCSMoney Platform = "csmoney"
)

// String returns the string representation.
func (p Platform) String() string {
	return string(p)
}

// IsValid checks if the Platform value is valid.
func (p Platform) IsValid() bool {
	switch p {
	case PlatformSteam, PlatformCSFloat, PlatformBuff163, PlatformSkinport, PlatformCSMoney:
		return true
	}
	return false
}

// DisplayName returns a human-readable marketplace name.
func (p Platform) DisplayName() string {
	switch p {
	case PlatformSteam:
		return "Steam Community Market"
	case PlatformCSFloat:
		return "CSFloat"
	case PlatformBuff163:
		return "BUFF163"
	case PlatformSkinport:
		return "Skinport"
	case PlatformCSMoney:
		return "CS.MONEY"
	}
	return string(p)
}

// platformAliases normalizes various marketplace spellings.
var platformAliases = map[string]Platform{
	"steam":    PlatformSteam,
	"csfloat":  PlatformCSFloat,
	"cs float": PlatformCSFloat,
	"buff":     PlatformBuff163,
	"buff163":  PlatformBuff163,
	"buff.163": PlatformBuff163,
	"skinport": PlatformSkinport,
	"csmoney":  PlatformCSMoney,
	"cs.money": PlatformCSMoney,
}

// ParsePlatform resolves a marketplace spelling to a Platform.
func ParsePlatform(s string) (Platform, error) {
	p, ok := platformAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", errors.Wrapf(ErrUnknownPlatform, "%q", s)
	}
	return p, nil
}
