package rolls

import (
	"regexp"
	"strconv"
)

var (
	formulaPattern = regexp.MustCompile(`(?i)\b3d6\b`)

	madePattern   = regexp.MustCompile(`(?i)Made it by\s+([+-]?\d+)`)
	missedPattern = regexp.MustCompile(`(?i)Missed it by\s+([+-]?\d+)`)
	mosPattern    = regexp.MustCompile(`(?i)\bMoS\b\s*[:=]?\s*([+-]?\d+)`)
	mofPattern    = regexp.MustCompile(`(?i)\bMoF\b\s*[:=]?\s*([+-]?\d+)`)

	outcomeTokenPattern = regexp.MustCompile(`(?i)(Success|Failure)!`)

	critSuccessPattern = regexp.MustCompile(`(?i)Critical\s+Success!`)
	critFailurePattern = regexp.MustCompile(`(?i)Critical\s+Failure!`)

	totalPattern    = regexp.MustCompile(`=\s*(\d+)`)
	diceTextPattern = regexp.MustCompile(`(?i)Rolled\s*\(\s*(\d)\s*,\s*(\d)\s*,\s*(\d)\s*\)\s*=\s*\d+`)
)

// HasCriticalSuccess reports whether normalized text announces a critical success
func HasCriticalSuccess(text string) bool {
	return critSuccessPattern.MatchString(text)
}

// HasCriticalFailure reports whether normalized text announces a critical failure
func HasCriticalFailure(text string) bool {
	return critFailurePattern.MatchString(text)
}

// hasMarginInfo reports whether text carries any outcome marker
func hasMarginInfo(text string) bool {
	return madePattern.MatchString(text) ||
		missedPattern.MatchString(text) ||
		mosPattern.MatchString(text) ||
		mofPattern.MatchString(text) ||
		outcomeTokenPattern.MatchString(text)
}

// firstInt returns the first capture group of pattern in text as an int
func firstInt(pattern *regexp.Regexp, text string) (int, bool) {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	v, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return v, true
}
