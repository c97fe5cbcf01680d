package core

import (
	"errors"
	"testing"
)

func TestValidateChunk(t *testing.T) {
	tests := []struct {
		name    string
		chunk   *Chunk
		wantErr error
	}{
		{
			name: "valid chunk",
			chunk: &Chunk{
				Id:            "CGI_197",
				Text:          "L'impôt est calculé en appliquant le barème progressif.",
				SourceLabel:   "CGI Article 197",
				ArticleNumber: "197",
				Source:        SourceKindCGI,
			},
			wantErr: nil,
		},
		{
			name: "valid chunk with empty vector",
			chunk: &Chunk{
				Id:     "bofip_chunk_0042",
				Text:   "La doctrine administrative précise les modalités d'application.",
				Source: SourceKindBOFiP,
				Vector: nil,
			},
			wantErr: nil,
		},
		{
			name: "valid chunk without article number",
			chunk: &Chunk{
				Id:     "bofip_chunk_0001",
				Text:   "Extrait de doctrine.",
				Source: SourceKindBOFiP,
			},
			wantErr: nil,
		},
		{
			name:    "nil chunk",
			chunk:   nil,
			wantErr: ErrInvalidChunk,
		},
		{
			name: "empty id",
			chunk: &Chunk{
				Id:   "",
				Text: "Texte sans identifiant.",
			},
			wantErr: ErrEmptyChunkID,
		},
		{
			name: "empty text",
			chunk: &Chunk{
				Id:   "CGI_4B",
				Text: "",
			},
			wantErr: ErrEmptyChunkText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateChunk(tt.chunk)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateChunk() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateChunk() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidChunk) {
				t.Errorf("ValidateChunk() error = %v, should wrap ErrInvalidChunk", err)
			}
		})
	}
}

func TestIsOfficialSource(t *testing.T) {
	tests := []struct {
		name     string
		chunk    *Chunk
		expected SourceKind
		want     bool
	}{
		{
			name:     "matching official source",
			chunk:    &Chunk{Id: "CGI_197", Text: "x", Source: SourceKindCGI},
			expected: SourceKindCGI,
			want:     true,
		},
		{
			name:     "unknown source is never official",
			chunk:    &Chunk{Id: "scraped_0001", Text: "x", Source: SourceKindUnknown},
			expected: SourceKindCGI,
			want:     false,
		},
		{
			name:     "official but wrong corpus",
			chunk:    &Chunk{Id: "bofip_chunk_0042", Text: "x", Source: SourceKindBOFiP},
			expected: SourceKindCGI,
			want:     false,
		},
		{
			name:     "nil chunk",
			chunk:    nil,
			expected: SourceKindCGI,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOfficialSource(tt.chunk, tt.expected); got != tt.want {
				t.Errorf("IsOfficialSource() = %v, want %v", got, tt.want)
			}
		})
	}
}
