package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePlatform_Aliases(t *testing.T) {
	tests := []struct {
		in   string
		want Platform
	}{
		{"steam", PlatformSteam},
		{"Steam", PlatformSteam},
		{"BUFF", PlatformBuff163},
		{"BUFF.163", PlatformBuff163},
		{"buff163", PlatformBuff163},
		{"CS.MONEY", PlatformCSMoney},
		{"csmoney", PlatformCSMoney},
		{"Skinport", PlatformSkinport},
		{"csfloat", PlatformCSFloat},
		{" csfloat ", PlatformCSFloat},
	}

	for _, tc := range tests {
		got, err := ParsePlatform(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}
}

func TestParsePlatform_Unknown(t *testing.T) {
	_, err := ParsePlatform("dmarket")
	require.ErrorIs(t, err, ErrUnknownPlatform)
}

func TestPlatform_IsValid(t *testing.T) {
	require.True(t, PlatformCSFloat.IsValid())
	require.False(t, Platform("dmarket").IsValid())
	require.False(t, Platform("").IsValid())
}

func TestPlatform_DisplayName(t *testing.T) {
	require.Equal(t, "Steam Community Market", PlatformSteam.DisplayName())
	require.Equal(t, "BUFF163", PlatformBuff163.DisplayName())
}
