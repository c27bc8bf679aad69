package gcode

// addressKind maps a word letter to the kind of value it takes. Letters are
// classified case-insensitively.
//
// Float letters cover positions (X Y Z), rotary and secondary axes (A B C,
// U V W), arc offsets (I J K), feed (F), radius/retract (R Q), spindle (S)
// and E. Integer letters cover modes and indices (G H M N O T P D L).
func addressKind(letter byte) (AddressKind, error) {
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	switch letter {
	case 'X', 'Y', 'Z',
		'A', 'B', 'C',
		'U', 'V', 'W',
		'I', 'J', 'K',
		'F', 'R', 'Q',
		'S', 'E':
		return AddressFloat, nil
	case 'G', 'H', 'M',
		'N', 'O', 'T',
		'P', 'D', 'L':
		return AddressInt, nil
	}
	return 0, &ParseError{Token: string(letter), Err: ErrUnknownAddressLetter}
}
