package easylog

// Locate runs extraction and segment selection.
func Locate(languageID string, src Source) (Target, error) {
	cand, err := Extract(languageID, src)
	if err != nil {
		return Target{}, err
	}
	if cand.Mode == ModeSelection {
		return Target{Chain: cand.Chain}, nil
	}
	return SelectTarget(cand.Chain, cand.Start, cand.Cursor), nil
}

// Plan locates the target in src and synthesizes the directive for line.
func Plan(languageID string, src Source, line uint32) (Directive, error) {
	target, err := Locate(languageID, src)
	if err != nil {
		return Directive{}, err
	}
	return Synthesize(target.String(), line), nil
}
