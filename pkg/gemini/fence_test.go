package gemini

import "testing"

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "no fence",
			in:   `{"a":1}`,
			want: `{"a":1}`,
		},
		{
			name: "json fence",
			in:   "```json\n{\"a\":1}\n```",
			want: `{"a":1}`,
		},
		{
			name: "bare fence",
			in:   "```\n{\"a\":1}\n```",
			want: `{"a":1}`,
		},
		{
			name: "surrounding whitespace",
			in:   "  \n```json\n{\"a\":1}\n```\n  ",
			want: `{"a":1}`,
		},
		{
			name: "single line fence",
			in:   "```{\"a\":1}```",
			want: `{"a":1}`,
		},
		{
			name: "single line fence with language tag",
			in:   "```json {\"a\":1}```",
			want: `{"a":1}`,
		},
		{
			name: "single line fence with non-tag first word kept",
			in:   "```{\"a\": 1}```",
			want: `{"a": 1}`,
		},
		{
			name: "unclosed fence",
			in:   "```json\n{\"a\":1}",
			want: `{"a":1}`,
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
		{
			name: "fence only",
			in:   "```\n```",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripCodeFences(tt.in); got != tt.want {
				t.Errorf("stripCodeFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	type story struct {
		Title string `json:"title"`
		Parts []int  `json:"parts"`
	}

	tests := []struct {
		name    string
		in      string
		want    story
		wantErr bool
	}{
		{
			name: "plain json",
			in:   `{"title":"A","parts":[1,2]}`,
			want: story{Title: "A", Parts: []int{1, 2}},
		},
		{
			name: "fenced json",
			in:   "```json\n{\"title\":\"B\",\"parts\":[3]}\n```",
			want: story{Title: "B", Parts: []int{3}},
		},
		{
			name: "repairable json with trailing comma",
			in:   `{"title":"C","parts":[1,2,],}`,
			want: story{Title: "C", Parts: []int{1, 2}},
		},
		{
			name: "repairable json with single quotes",
			in:   `{'title': 'D', 'parts': [4]}`,
			want: story{Title: "D", Parts: []int{4}},
		},
		{
			name:    "not json at all",
			in:      "Sorry, I can't do that.",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got story
			err := DecodeJSON(tt.in, &got)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("DecodeJSON(%q) succeeded, want error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeJSON(%q): %v", tt.in, err)
			}
			if got.Title != tt.want.Title || len(got.Parts) != len(tt.want.Parts) {
				t.Errorf("DecodeJSON(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}
