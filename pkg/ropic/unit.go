package ropic

// Unit is the success payload for operations that succeed without
// producing data, e.g. Either[Unit, F] for validations. Awaiting such a
// container yields a Unit carrying no information.
type Unit struct{}

// OK is the single Unit value.
var OK = Unit{}
