package pacfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRenderedDocument(t *testing.T) {
	pac, err := Render([]string{"example.com", "test.org"}, "")
	require.NoError(t, err)

	rep := Validate(pac, GojaChecker{})
	assert.Equal(t, CheckPassed, rep.Structural)
	assert.Equal(t, CheckPassed, rep.Syntax)
	assert.True(t, rep.OK())
}

func TestValidateRenderedEmptyDocument(t *testing.T) {
	pac, err := Render(nil, "")
	require.NoError(t, err)

	rep := Validate(pac, GojaChecker{})
	assert.True(t, rep.OK(), "empty allow set must still render a valid document")
}

func TestValidateMissingFunction(t *testing.T) {
	rep := Validate("var x = 1;", GojaChecker{})
	assert.Equal(t, CheckFailed, rep.Structural)
	assert.Contains(t, rep.Missing, "FindProxyForURL function")
	assert.False(t, rep.OK())
}

func TestValidateMissingDirect(t *testing.T) {
	rep := Validate(`function FindProxyForURL(url, host) { return "PROXY 127.0.0.1:1"; }`, GojaChecker{})
	assert.Equal(t, CheckFailed, rep.Structural)
	assert.Contains(t, rep.Missing, "DIRECT return")
}

func TestValidateMissingProxy(t *testing.T) {
	rep := Validate(`function FindProxyForURL(url, host) { return "DIRECT"; }`, GojaChecker{})
	assert.Equal(t, CheckFailed, rep.Structural)
	assert.Contains(t, rep.Missing, "loopback PROXY return")
	assert.False(t, rep.OK())
}

func TestValidateAcceptsSingleQuotes(t *testing.T) {
	doc := `function FindProxyForURL(url, host) {
    if (host === 'example.com') { return 'DIRECT'; }
    return 'PROXY 127.0.0.1:1';
}`
	rep := Validate(doc, GojaChecker{})
	assert.Equal(t, CheckPassed, rep.Structural)
	assert.True(t, rep.OK())
}

func TestValidateSyntaxError(t *testing.T) {
	doc := `function FindProxyForURL(url, host) {
    return "DIRECT";
    return "PROXY 127.0.0.1:1";
` // unterminated function body
	rep := Validate(doc, GojaChecker{})
	assert.Equal(t, CheckPassed, rep.Structural)
	assert.Equal(t, CheckFailed, rep.Syntax)
	assert.NotEmpty(t, rep.SyntaxErr)
	assert.False(t, rep.OK())
}

func TestValidateNilCheckerSkipsSyntax(t *testing.T) {
	pac, err := Render([]string{"example.com"}, "")
	require.NoError(t, err)

	rep := Validate(pac, nil)
	assert.Equal(t, CheckPassed, rep.Structural)
	assert.Equal(t, CheckSkipped, rep.Syntax)
	assert.True(t, rep.OK(), "skipped syntax check is reduced confidence, not failure")
	assert.NotEqual(t, CheckPassed, rep.Syntax, "skipped must never read as passed")
}

func TestCheckStatusString(t *testing.T) {
	assert.Equal(t, "passed", CheckPassed.String())
	assert.Equal(t, "failed", CheckFailed.String())
	assert.Equal(t, "skipped", CheckSkipped.String())
}
