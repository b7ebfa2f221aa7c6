package main

import "github.com/halcyon-studio/landing/internal/page"

// ---------------------------------------------------------------------------
// Page content
// ---------------------------------------------------------------------------

func studioPrograms() []program {
	return []program{
		{name: "Foundations", blurb: "Strength and mobility basics, twice a week."},
		{name: "Flow", blurb: "Continuous movement sequences for intermediate members."},
		{name: "Aerial", blurb: "Silks and hoop, small groups, all levels welcome."},
		{name: "Open Floor", blurb: "Unstructured practice time with a coach on hand."},
	}
}

// galleryArt is the deferred studio photo: rendered only once the
// gallery section scrolls near the viewport.
func galleryArt() []string {
	return []string{
		`   _________________________________`,
		`  /                                 \`,
		` |   .-.    HALCYON    .-.           |`,
		` |  (   )  open floor (   )          |`,
		` |   '-'    sunrise    '-'           |`,
		` |      ~~~~~~~~~~~~~~~~~~           |`,
		`  \_________________________________/`,
	}
}

func buildDoc() *page.Doc {
	return &page.Doc{
		Gap: 1,
		Sections: []*page.Section{
			{
				ID:    sectionHero,
				Title: "Move better, together",
				Body: []string{
					"A neighbourhood movement studio in Spotswood.",
					"Classes every day from 6am. First week free.",
					"",
					"Press tab to get in touch, or scroll to look around.",
				},
			},
			{
				ID:    sectionPrograms,
				Title: "Programs",
				// Body is regenerated each frame from the program cards
				// and the current selection.
			},
			{
				ID:    sectionGallery,
				Title: "The studio",
				Lazy: &page.LazySlot{
					Placeholder: []string{"(photo loading…)"},
					Content:     galleryArt(),
				},
			},
			{
				ID:    sectionContact,
				Title: "Get in touch",
				// Body is regenerated each frame from the contact form.
			},
		},
	}
}

// programLines renders the program cards with the current selection
// marked. Selection movement is what feeds hover tracking.
func programLines(programs []program, sel int) []string {
	var out []string
	for i, p := range programs {
		marker := "  "
		name := p.name
		if i == sel {
			marker = cursorStyle.Render("> ")
			name = selectedStyle.Render(name)
		}
		out = append(out, marker+name)
		out = append(out, "    "+subtleStyle.Render(p.blurb))
	}
	return out
}
