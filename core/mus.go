// Copyright 2025 Francis Fiscal
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	mus "github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for the core domain types. These define the on-disk layout
// of compiled corpora and vector files; the field order below is part of that
// format and must not be reordered.
var (
	// VectorMUS serializes an embedding vector as a length-prefixed
	// sequence of raw float32 values.
	VectorMUS = ord.NewSliceSer[float32](raw.Float32)

	// HierarchyMUS serializes a Hierarchy.
	HierarchyMUS = hierarchySer{}

	// ChunkMUS serializes a Chunk.
	ChunkMUS = chunkSer{}
)

type hierarchySer struct{}

var _ mus.Serializer[Hierarchy] = hierarchySer{}

func (hierarchySer) Marshal(h Hierarchy, bs []byte) (n int) {
	n = ord.String.Marshal(h.Book, bs)
	n += ord.String.Marshal(h.Title, bs[n:])
	n += ord.String.Marshal(h.Chapter, bs[n:])
	n += ord.String.Marshal(h.Section, bs[n:])
	return
}

func (hierarchySer) Unmarshal(bs []byte) (h Hierarchy, n int, err error) {
	var n1 int
	if h.Book, n, err = ord.String.Unmarshal(bs); err != nil {
		return
	}
	if h.Title, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return h, n + n1, err
	}
	n += n1
	if h.Chapter, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return h, n + n1, err
	}
	n += n1
	h.Section, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (hierarchySer) Size(h Hierarchy) (size int) {
	size = ord.String.Size(h.Book)
	size += ord.String.Size(h.Title)
	size += ord.String.Size(h.Chapter)
	size += ord.String.Size(h.Section)
	return
}

func (hierarchySer) Skip(bs []byte) (n int, err error) {
	var n1 int
	for i := 0; i < 4; i++ {
		if n1, err = ord.String.Skip(bs[n:]); err != nil {
			return n + n1, err
		}
		n += n1
	}
	return
}

type chunkSer struct{}

var _ mus.Serializer[Chunk] = chunkSer{}

func (chunkSer) Marshal(c Chunk, bs []byte) (n int) {
	n = ord.String.Marshal(c.Id, bs)
	n += ord.String.Marshal(c.Text, bs[n:])
	n += ord.String.Marshal(c.SourceLabel, bs[n:])
	n += ord.String.Marshal(c.ArticleNumber, bs[n:])
	n += varint.Int.Marshal(int(c.Source), bs[n:])
	n += HierarchyMUS.Marshal(c.Hierarchy, bs[n:])
	n += VectorMUS.Marshal(c.Vector, bs[n:])
	return
}

func (chunkSer) Unmarshal(bs []byte) (c Chunk, n int, err error) {
	var n1 int
	if c.Id, n, err = ord.String.Unmarshal(bs); err != nil {
		return
	}
	if c.Text, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return c, n + n1, err
	}
	n += n1
	if c.SourceLabel, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return c, n + n1, err
	}
	n += n1
	if c.ArticleNumber, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return c, n + n1, err
	}
	n += n1
	var kind int
	if kind, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return c, n + n1, err
	}
	c.Source = SourceKind(kind)
	n += n1
	if c.Hierarchy, n1, err = HierarchyMUS.Unmarshal(bs[n:]); err != nil {
		return c, n + n1, err
	}
	n += n1
	c.Vector, n1, err = VectorMUS.Unmarshal(bs[n:])
	n += n1
	return
}

func (chunkSer) Size(c Chunk) (size int) {
	size = ord.String.Size(c.Id)
	size += ord.String.Size(c.Text)
	size += ord.String.Size(c.SourceLabel)
	size += ord.String.Size(c.ArticleNumber)
	size += varint.Int.Size(int(c.Source))
	size += HierarchyMUS.Size(c.Hierarchy)
	size += VectorMUS.Size(c.Vector)
	return
}

func (chunkSer) Skip(bs []byte) (n int, err error) {
	var n1 int
	for i := 0; i < 4; i++ {
		if n1, err = ord.String.Skip(bs[n:]); err != nil {
			return n + n1, err
		}
		n += n1
	}
	if n1, err = varint.Int.Skip(bs[n:]); err != nil {
		return n + n1, err
	}
	n += n1
	if n1, err = HierarchyMUS.Skip(bs[n:]); err != nil {
		return n + n1, err
	}
	n += n1
	n1, err = VectorMUS.Skip(bs[n:])
	n += n1
	return
}
