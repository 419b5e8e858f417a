// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package submission validates and stores a respondent's name and age.

# Validation

Validate checks the raw field values and returns at most one message per
field:

	Name is required
	Age is required
	Age must be a positive number

A name is trimmed before the check. An age must parse as a whole number
greater than zero.

# Form

A Form holds the field values of one respondent between edits. Submit
validates, inserts through an Inserter and clears the fields on success.
While an insert is in flight a second Submit returns ErrSubmitting.

The HTTP handler builds a fresh Form per request, since a POST carries the
complete field set. UserMessage turns a storage error into banner text,
falling back to a generic message when the error has none.
*/
package submission
