package utils

import "testing"

func TestCleanJSONResponse(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			"plain object",
			`{"a": 1}`,
			`{"a": 1}`,
		},
		{
			"json fence",
			"```json\n{\"a\": 1}\n```",
			`{"a": 1}`,
		},
		{
			"uppercase fence",
			"```JSON\n{\"a\": 1}\n```",
			`{"a": 1}`,
		},
		{
			"leading prose",
			"Here is your itinerary:\n{\"a\": 1}\nEnjoy the trip!",
			`{"a": 1}`,
		},
		{
			"array payload",
			"result: [1, 2, 3] done",
			`[1, 2, 3]`,
		},
		{
			"braces inside strings",
			`{"note": "use {curly} braces", "n": 1}`,
			`{"note": "use {curly} braces", "n": 1}`,
		},
		{
			"escaped quote inside string",
			`{"note": "she said \"hi\"", "n": 2}`,
			`{"note": "she said \"hi\"", "n": 2}`,
		},
		{
			"nested objects",
			`prefix {"a": {"b": {"c": 3}}} suffix`,
			`{"a": {"b": {"c": 3}}}`,
		},
	}

	for _, tc := range cases {
		if got := CleanJSONResponse(tc.in); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestNewItineraryClientUnknownProvider(t *testing.T) {
	if _, err := NewItineraryClient("cohere", "key", ""); err == nil {
		t.Fatal("expected error for unsupported provider")
	}
}
