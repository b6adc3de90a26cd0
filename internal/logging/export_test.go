package logging

// InfoMarkup exposes the selected info header markup for tests.
func (f *Facility) InfoMarkup() (prefix, suffix string) {
	return f.infoMarkup.prefix, f.infoMarkup.suffix
}

// ErrorMarkup exposes the selected error header markup for tests.
func (f *Facility) ErrorMarkup() (prefix, suffix string) {
	return f.errorMarkup.prefix, f.errorMarkup.suffix
}
