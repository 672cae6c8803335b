package itinerary

import (
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHTML(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		trusted bool
		want    template.HTML
	}{
		{"line breaks", "Day 1\nDay 2", false, "Day 1<br>Day 2"},
		{"windows line breaks", "Day 1\r\nDay 2", false, "Day 1<br>Day 2"},
		{"escapes markup", "<script>alert(1)</script>\nok", false, "&lt;script&gt;alert(1)&lt;/script&gt;<br>ok"},
		{"trusted keeps markup", "<b>Day 1</b>\nDay 2", true, "<b>Day 1</b><br>Day 2"},
		{"error text", "An error occurred during API call: timeout", false, "An error occurred during API call: timeout"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ToHTML(tc.text, tc.trusted))
		})
	}
}
