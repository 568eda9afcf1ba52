package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractLockedSpans(t *testing.T) {
	template := "Intro\n$$LOCKED START$$Primeiro bloco$$LOCKED END$$\nmeio\n$$LOCKED START$$ Segundo bloco $$LOCKED END$$\nfim"

	spans := ExtractLockedSpans(template)

	assert.Equal(t, []string{"Primeiro bloco", "Segundo bloco"}, spans)
}

func TestExtractLockedSpansNoMarkers(t *testing.T) {
	assert.Empty(t, ExtractLockedSpans("texto sem blocos"))
}

func TestExtractLockedSpansMultiline(t *testing.T) {
	template := "$$LOCKED START$$linha um\nlinha dois$$LOCKED END$$"

	spans := ExtractLockedSpans(template)

	assert.Equal(t, []string{"linha um\nlinha dois"}, spans)
}

func TestStripLockMarkersKeepsEnclosedText(t *testing.T) {
	template := "a $$LOCKED START$$bloco$$LOCKED END$$ b"

	stripped := StripLockMarkers(template)

	assert.Equal(t, "a bloco b", stripped)
}

func TestStripLockMarkersIdempotent(t *testing.T) {
	template := "a $$LOCKED START$$bloco$$LOCKED END$$ b"

	once := StripLockMarkers(template)
	twice := StripLockMarkers(once)

	assert.Equal(t, once, twice)
}
