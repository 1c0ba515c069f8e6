package worklog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration_ColonForm(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 150, ParseDuration("2:30"))
	assert.Equal(t, 15, ParseDuration("0:15"))
	assert.Equal(t, 725, ParseDuration("12:05"))
}

func TestParseDuration_ColonFormStopsFurtherParsing(t *testing.T) {
	t.Parallel()

	// Letter components after a colon match must not contribute.
	assert.Equal(t, 150, ParseDuration("2:30 1h 30m"))
}

func TestParseDuration_ColonFormOnlyAtStart(t *testing.T) {
	t.Parallel()

	// A colon token later in the fragment does not trigger the colon form;
	// the letter form then finds nothing in "logged 2:30".
	assert.Equal(t, 0, ParseDuration("logged 2:30"))
}

func TestParseDuration_LetterForm(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 150, ParseDuration("2h 30m"))
	assert.Equal(t, 30, ParseDuration("30m"))
	assert.Equal(t, 120, ParseDuration("2h"))
}

func TestParseDuration_LetterFormCaseInsensitive(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 150, ParseDuration("2H 30M"))
}

func TestParseDuration_TwoDigitMinuteQuirk(t *testing.T) {
	t.Parallel()

	// The minute component requires exactly two digits: "5m" does not
	// match, "05m" does. The hour component accepts any digit count.
	assert.Equal(t, 120, ParseDuration("2h 5m"))
	assert.Equal(t, 125, ParseDuration("2h 05m"))
	assert.Equal(t, 0, ParseDuration("5m"))
	assert.Equal(t, 5, ParseDuration("05m"))
}

func TestParseDuration_Unparseable(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, ParseDuration(""))
	assert.Equal(t, 0, ParseDuration("half a day"))
	assert.Equal(t, 0, ParseDuration("90"))
}
