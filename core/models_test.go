package core

import (
	"strings"
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "same content produces same ID",
			content: "Les plus-values immobilières sont imposées au taux de 19 %.",
		},
		{
			name:    "empty string",
			content: "",
		},
		{
			name:    "long content",
			content: strings.Repeat("Le barème progressif de l'impôt sur le revenu ", 50),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %s vs %s", id1, id2)
			}
			if !strings.HasPrefix(id1, "chunk_") {
				t.Errorf("IDFromContent() = %s, want chunk_ prefix", id1)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("article 197")
	id2 := IDFromContent("article 150 U")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestSourceKind_String(t *testing.T) {
	tests := []struct {
		kind SourceKind
		want string
	}{
		{SourceKindCGI, "CGI"},
		{SourceKindBOFiP, "BOFiP"},
		{SourceKindAndorra, "andorra"},
		{SourceKindSwitzerland, "switzerland"},
		{SourceKindLuxembourg, "luxembourg"},
		{SourceKindUnknown, "unknown"},
		{SourceKind(999), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("SourceKind(%d).String() = %s, want %s", tt.kind, got, tt.want)
		}
	}
}

func TestSourceKind_RoundTrip(t *testing.T) {
	kinds := []SourceKind{
		SourceKindCGI,
		SourceKindBOFiP,
		SourceKindAndorra,
		SourceKindSwitzerland,
		SourceKindLuxembourg,
	}
	for _, kind := range kinds {
		if got := SourceKindFromString(kind.String()); got != kind {
			t.Errorf("SourceKindFromString(%q) = %v, want %v", kind.String(), got, kind)
		}
	}

	if got := SourceKindFromString("wikipedia"); got != SourceKindUnknown {
		t.Errorf("SourceKindFromString(wikipedia) = %v, want SourceKindUnknown", got)
	}
}

func TestSourceKind_IsOfficial(t *testing.T) {
	if SourceKindUnknown.IsOfficial() {
		t.Error("SourceKindUnknown.IsOfficial() = true, want false")
	}
	if !SourceKindCGI.IsOfficial() {
		t.Error("SourceKindCGI.IsOfficial() = false, want true")
	}
	if !SourceKindBOFiP.IsOfficial() {
		t.Error("SourceKindBOFiP.IsOfficial() = false, want true")
	}
}
