package main

// paneCaptionLines is how many caption lines the description pane shows.
const paneCaptionLines = 3

// panePlaceholder fills unused pane lines so the pane keeps its height.
const panePlaceholder = ":"

// Description is the title and caption of a highlighted piece.
type Description struct {
	Title   string   `json:"title"`
	Caption []string `json:"caption,omitempty"`
}

// Lines lays the description out as the pane shows it: the title followed
// by exactly paneCaptionLines caption lines.
func (d Description) Lines() []string {
	out := make([]string, 0, 1+paneCaptionLines)
	out = append(out, d.Title)
	for i := range paneCaptionLines {
		if i < len(d.Caption) {
			out = append(out, panePlaceholder+" "+d.Caption[i])
		} else {
			out = append(out, panePlaceholder)
		}
	}
	return out
}

// BlankPane is the content of a cleared pane.
func BlankPane() []string {
	out := make([]string, 1+paneCaptionLines)
	for i := range out {
		out[i] = panePlaceholder
	}
	return out
}

// Pane is the description area next to a diagram.
type Pane interface {
	Show(d Description)
	Clear()
}
