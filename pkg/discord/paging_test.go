package discord

import (
	"fmt"
	"testing"

	"github.com/bwmarrin/discordgo"
)

func makeFields(n int) []*discordgo.MessageEmbedField {
	fields := make([]*discordgo.MessageEmbedField, n)
	for i := range fields {
		fields[i] = &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("field-%d", i),
			Value: fmt.Sprintf("value-%d", i),
		}
	}
	return fields
}

func TestPageFieldsPageCount(t *testing.T) {
	tests := []struct {
		total   int
		perPage int
		want    int
	}{
		{0, 25, 1},
		{1, 25, 1},
		{25, 25, 1},
		{26, 25, 2},
		{50, 25, 2},
		{51, 25, 3},
		{7, 3, 3},
	}

	for _, tt := range tests {
		pages := PageFields(makeFields(tt.total), tt.perPage)
		if len(pages) != tt.want {
			t.Errorf("PageFields(%d fields, %d per page) = %d pages, want %d", tt.total, tt.perPage, len(pages), tt.want)
		}
	}
}

func TestPageFieldsBoundaries(t *testing.T) {
	fields := makeFields(7)
	pages := PageFields(fields, 3)

	if len(pages) != 3 {
		t.Fatalf("len(pages) = %d, want 3", len(pages))
	}
	if len(pages[0]) != 3 || len(pages[1]) != 3 || len(pages[2]) != 1 {
		t.Errorf("page sizes = %d,%d,%d, want 3,3,1", len(pages[0]), len(pages[1]), len(pages[2]))
	}

	// Concatenating the pages must reproduce the original order exactly
	var flat []*discordgo.MessageEmbedField
	for _, page := range pages {
		flat = append(flat, page...)
	}
	if len(flat) != len(fields) {
		t.Fatalf("len(flat) = %d, want %d", len(flat), len(fields))
	}
	for i := range fields {
		if flat[i] != fields[i] {
			t.Errorf("flat[%d] = %v, want %v", i, flat[i].Name, fields[i].Name)
		}
	}
}

func TestPageFieldsEmptyInput(t *testing.T) {
	pages := PageFields(nil, 25)
	if len(pages) != 1 {
		t.Fatalf("len(pages) = %d, want 1", len(pages))
	}
	if len(pages[0]) != 0 {
		t.Errorf("len(pages[0]) = %d, want 0", len(pages[0]))
	}
}

func TestPageFieldsInvalidPerPage(t *testing.T) {
	pages := PageFields(makeFields(3), 0)
	if len(pages) != 3 {
		t.Errorf("PageFields with perPage=0 = %d pages, want 3 (one per field)", len(pages))
	}
}
