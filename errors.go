package camel

import "fmt"

// DatabaseParseError is returned by LoadDB when the database file is
// malformed: a missing section marker, a line with the wrong number of
// fields, or a reference to an undefined feature.
type DatabaseParseError struct {
	Msg string
}

func (e *DatabaseParseError) Error() string {
	return fmt.Sprintf("error parsing database (%s)", e.Msg)
}

// InvalidDatabaseFlagError is returned by LoadDB when the flag string
// contains a character other than 'a', 'g' or 'r'.
type InvalidDatabaseFlagError struct {
	Flag rune
}

func (e *InvalidDatabaseFlagError) Error() string {
	return fmt.Sprintf("invalid database flag value %q", e.Flag)
}

// AnalyzerError is returned by NewAnalyzer on invalid configuration:
// a nil database, a database opened without analysis support, an
// unrecognized backoff mode, or a backoff mode the database has no
// backoff entries for.
type AnalyzerError struct {
	Msg string
}

func (e *AnalyzerError) Error() string {
	return e.Msg
}

// GeneratorError is returned by NewGenerator on invalid configuration.
type GeneratorError struct {
	Msg string
}

func (e *GeneratorError) Error() string {
	return e.Msg
}

// InvalidGeneratorFeatureError is returned by Generator.Generate when a
// requested feature is not defined in the database.
type InvalidGeneratorFeatureError struct {
	Feat string
}

func (e *InvalidGeneratorFeatureError) Error() string {
	return fmt.Sprintf("invalid feature %q", e.Feat)
}

// InvalidGeneratorFeatureValueError is returned by Generator.Generate
// when a requested feature is given a value outside its allowed set.
type InvalidGeneratorFeatureValueError struct {
	Feat  string
	Value string
}

func (e *InvalidGeneratorFeatureValueError) Error() string {
	return fmt.Sprintf("invalid value %q for feature %q", e.Value, e.Feat)
}

// ReinflectorError is returned by NewReinflector on invalid
// configuration.
type ReinflectorError struct {
	Msg string
}

func (e *ReinflectorError) Error() string {
	return e.Msg
}

// InvalidReinflectorFeatureError is returned by Reinflector.Reinflect
// when a requested feature is not defined in the database.
type InvalidReinflectorFeatureError struct {
	Feat string
}

func (e *InvalidReinflectorFeatureError) Error() string {
	return fmt.Sprintf("invalid feature %q", e.Feat)
}

// InvalidReinflectorFeatureValueError is returned by
// Reinflector.Reinflect when a requested feature is given a value
// outside its allowed set.
type InvalidReinflectorFeatureValueError struct {
	Feat  string
	Value string
}

func (e *InvalidReinflectorFeatureValueError) Error() string {
	return fmt.Sprintf("invalid value %q for feature %q", e.Value, e.Feat)
}
