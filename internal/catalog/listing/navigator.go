package listing

// Navigator is the navigation port a controller pushes shareable URLs
// through. replace = true means replace-navigation: the pushed URL
// overwrites the current history entry instead of adding a new one.
type Navigator interface {
	Navigate(url string, replace bool)
}

// RecordingNavigator captures the most recent navigation. HTTP
// handlers use it to surface the canonical URL of the current view;
// tests inspect it directly.
type RecordingNavigator struct {
	URL      string
	Replaced bool
}

func (n *RecordingNavigator) Navigate(url string, replace bool) {
	n.URL = url
	n.Replaced = replace
}
