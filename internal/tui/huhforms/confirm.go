package huhforms

import "charm.land/huh/v2"

// CreateDeleteConfirm creates the yes/no prompt used before deleting a task
func CreateDeleteConfirm(title string, confirm *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(`Delete "` + title + `"?`).
				Description("This cannot be undone.").
				Affirmative("Delete").
				Negative("Cancel").
				Value(confirm),
		),
	)
}
