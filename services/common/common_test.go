package common

import "testing"

func assertEqual(t *testing.T, expected, actual interface{}, msg string) {
	t.Helper()
	if expected != actual {
		t.Errorf("%s: expected %v, got %v", msg, expected, actual)
	}
}

func TestContains(t *testing.T) {
	sports := []string{"soccer", "basketball"}
	assertEqual(t, true, Contains(sports, "soccer"), "known sport")
	assertEqual(t, false, Contains(sports, "curling"), "unknown sport")
	assertEqual(t, false, Contains(nil, "soccer"), "nil slice")
	assertEqual(t, true, Contains([]int{1, 2, 3}, 2), "int slice")
}

func TestFormatEV(t *testing.T) {
	assertEqual(t, "+5.2%", FormatEV(5.2), "positive")
	assertEqual(t, "+0.0%", FormatEV(0), "zero")
	assertEqual(t, "-2.5%", FormatEV(-2.5), "negative")
}

func TestFormatPrice(t *testing.T) {
	assertEqual(t, "1.91", FormatPrice(1.91), "two decimals")
	assertEqual(t, "2.5", FormatPrice(2.50), "trailing zero trimmed")
	assertEqual(t, "2.1", FormatPrice(2.10), "trailing zero trimmed again")
}

func TestFormatLine(t *testing.T) {
	assertEqual(t, "2.5", FormatLine(2.5), "half line")
	assertEqual(t, "3", FormatLine(3.0), "whole line")
}
