// Package domain holds DTOs for words http and service contracts
package domain

// Positions are grapheme cluster offsets into the text, not bytes or runes.
// An empty preset selects the server's active set; "auto" guesses one from the text's script

// PositionInput asks about a single position in a text
type PositionInput struct {
	Text     string `json:"text" example:"hello world"`
	Position int    `json:"position" validate:"min=0" example:"3"`
	Preset   string `json:"preset,omitempty" validate:"omitempty,preset" example:"default"`
}

// TextInput asks about the edges of a whole text
type TextInput struct {
	Text   string `json:"text" example:"hello world"`
	Preset string `json:"preset,omitempty" validate:"omitempty,preset" example:"default"`
}

// CursorInput is a document split at the cursor
type CursorInput struct {
	Before string `json:"before" example:"Thanks. hel"`
	After  string `json:"after" example:"lo there"`
	Preset string `json:"preset,omitempty" validate:"omitempty,preset" example:"default"`
}

// ReplaceInput replaces the word at the cursor
type ReplaceInput struct {
	Before      string `json:"before" example:"I sea"`
	After       string `json:"after" example:"d it"`
	Replacement string `json:"replacement" validate:"max=4096" example:"said"`
	MatchCase   bool   `json:"match_case,omitempty"`
	Lang        string `json:"lang,omitempty" validate:"omitempty,bcp47" example:"en"`
	Preset      string `json:"preset,omitempty" validate:"omitempty,preset" example:"default"`
}

// WordResult is the word straddling a position
type WordResult struct {
	Preset string `json:"preset" example:"default"`
	Found  bool   `json:"found" example:"true"`
	Word   string `json:"word" example:"hello"`
	Start  int    `json:"start" example:"0"`
	End    int    `json:"end" example:"5"`
}

// FragmentResult is the fragment on one side of a position
type FragmentResult struct {
	Preset   string `json:"preset" example:"default"`
	Fragment string `json:"fragment" example:"hel"`
}

// EdgesResult describes the start and end of a text
type EdgesResult struct {
	Preset          string `json:"preset" example:"default"`
	Start           string `json:"start" example:"hello"`
	End             string `json:"end" example:"world"`
	DelimiterSuffix bool   `json:"delimiter_suffix" example:"false"`
	Length          int    `json:"length" example:"11"`
}

// CursorResult describes the text around a cursor
type CursorResult struct {
	Preset      string `json:"preset" example:"default"`
	Word        string `json:"word" example:"hello"`
	Found       bool   `json:"found" example:"true"`
	PreCursor   string `json:"pre_cursor" example:"hel"`
	PostCursor  string `json:"post_cursor" example:"lo"`
	NewWord     bool   `json:"new_word" example:"false"`
	NewSentence bool   `json:"new_sentence" example:"false"`
}

// ReplaceResult is the document after a replacement and the word that was replaced
type ReplaceResult struct {
	Preset   string `json:"preset" example:"default"`
	Before   string `json:"before" example:"I said"`
	After    string `json:"after" example:" it"`
	Replaced string `json:"replaced" example:"sead"`
}

// PresetInfo lists one delimiter preset
type PresetInfo struct {
	Name        string `json:"name" example:"default"`
	Description string `json:"description,omitempty"`
	Active      bool   `json:"active" example:"true"`
}
