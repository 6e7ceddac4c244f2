package cursor

// AdjustForInsertion transforms an offset for text inserted at insertOffset.
// Offsets strictly after the insertion point shift right; offsets at or
// before it stay put, so a cursor at the end of a line keeps its place when
// text is appended there.
func AdjustForInsertion(offset ByteOffset, insertOffset ByteOffset, insertLen ByteOffset) ByteOffset {
	if offset <= insertOffset {
		return offset
	}
	return offset + insertLen
}

// TransformForInsertion returns sel with both ends adjusted for an insertion.
func TransformForInsertion(sel Selection, insertOffset, insertLen ByteOffset) Selection {
	return Selection{
		Anchor: AdjustForInsertion(sel.Anchor, insertOffset, insertLen),
		Head:   AdjustForInsertion(sel.Head, insertOffset, insertLen),
	}
}
