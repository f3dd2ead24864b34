package usecases

// ContentSanitizer removes markup from user-written text.
type ContentSanitizer interface {
	StripTags(text string) string
}
