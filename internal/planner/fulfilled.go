package planner

// ContentRecord is a generated content row as seen by the planner. A nil
// Hashtags slice means the column was null.
type ContentRecord struct {
	ThemeID       string
	ScheduledDate string
	ContentType   ContentType
	FilePath      string
	Caption       string
	Hashtags      []string
	Status        string
}

// Ready reports whether the record carries everything needed to publish:
// a file, a caption and a hashtag list.
func (r ContentRecord) Ready() bool {
	return r.FilePath != "" && r.Caption != "" && r.Hashtags != nil
}

// IsFulfilled reports whether some record fills the (theme, date, type) slot
// and is ready to publish. The date may carry a time of day; records with
// unparseable dates are ignored.
func IsFulfilled(records []ContentRecord, themeID, date string, contentType ContentType) bool {
	want, ok := NormalizeDate(date)
	if !ok {
		return false
	}

	for _, r := range records {
		if r.ThemeID != themeID || r.ContentType != contentType {
			continue
		}
		got, ok := NormalizeDate(r.ScheduledDate)
		if !ok || got != want {
			continue
		}
		if r.Ready() {
			return true
		}
	}
	return false
}
