package config

import "testing"

func TestSubstituteEnvVars(t *testing.T) {
	t.Setenv("CROSSINFO_TEST_LEVEL", "debug")

	input := []byte("logging:\n  level: \"${CROSSINFO_TEST_LEVEL}\"\n")
	result := substituteEnvVars(input)

	expected := "logging:\n  level: \"debug\"\n"
	if string(result) != expected {
		t.Errorf("expected %q, got %q", expected, string(result))
	}
}

func TestSubstituteEnvVarsUnset(t *testing.T) {
	input := []byte("file: ${CROSSINFO_DOES_NOT_EXIST}")
	result := substituteEnvVars(input)

	// Unset variables are left as-is.
	if string(result) != string(input) {
		t.Errorf("expected %q, got %q", string(input), string(result))
	}
}

func TestSubstituteEnvVarsMultiple(t *testing.T) {
	t.Setenv("CROSSINFO_TEST_A", "one")
	t.Setenv("CROSSINFO_TEST_B", "two")

	input := []byte("${CROSSINFO_TEST_A}-${CROSSINFO_TEST_B}")
	result := substituteEnvVars(input)

	if string(result) != "one-two" {
		t.Errorf("expected one-two, got %s", string(result))
	}
}
