package level

// Tutorial returns the built-in introductory levels, numbered from 1.
func Tutorial() []Level {
	return []Level{
		{
			ID:          1,
			Title:       "The Four Directions",
			Description: "Move the cursor to the 'X' using h, j, k, l.",
			Start: []string{
				"The path is dark.",
				"Navigate to the X",
				"     X     ",
				"Trust your fingers.",
			},
			Goal:        CursorAtPosition(2, 5),
			AllowedKeys: []string{"h", "j", "k", "l"},
			Hints:       []string{"h: left", "j: down", "k: up", "l: right"},
			Intro:       "Welcome, initiate. I am Anthony. To wield the dark magic, you must first learn to move without the rodent (mouse). Use H, J, K, L.",
			Success:     "Acceptable. Your fingers begin to remember.",
		},
		{
			ID:          2,
			Title:       "The Curse of Extra Characters",
			Description: "Exorcise the ghosts (g) using 'x'.",
			Start: []string{
				"Remgove theg gghosts.",
				"Cleanse thgis line.",
				"Pugrify the code.",
			},
			Goal: ExactText{Lines: []string{
				"Remove the ghosts.",
				"Cleanse this line.",
				"Purify the code.",
			}},
			AllowedKeys: []string{"h", "j", "k", "l", "x", "w", "b"},
			Hints:       []string{`Move onto a "g" and press "x" to exorcise it.`},
			Intro:       "Phantoms infest this scroll. Place your cursor upon them and press 'x' to banish them to the void.",
			Success:     "The spirits are at rest. You are ruthless.",
		},
		{
			ID:          3,
			Title:       "Incantations (Insert)",
			Description: "Complete the spells. Press 'i' to insert, 'Esc' to exit.",
			Start: []string{
				"The spell is: Abarcad",
				"Summon the: Daemo",
				"Vim is: Lif",
			},
			Goal: ExactText{Lines: []string{
				"The spell is: Abracadabra",
				"Summon the: Daemon",
				"Vim is: Life",
			}},
			AllowedKeys: []string{"h", "j", "k", "l", "i", "Escape"},
			Hints:       []string{"Press 'i' to start typing. Press 'Esc' to move again."},
			Intro:       "To create is divine. Press 'i' to enter the inner sanctum (Insert Mode). Inscribe the missing runes. Press ESCAPE to return to reality.",
			Success:     "Your creative energies are... potent.",
		},
	}
}

// Fallback returns the level substituted when generation fails.
func Fallback(id int) Level {
	return WithDefaults(Level{
		Title:       "The Void's Error",
		Description: "The infinite generator has stumbled.",
		Start:       []string{"Error generating level.", "Fix this manually."},
		Goal:        ExactText{Lines: []string{"Level generated.", "Fixed manually."}},
		Intro:       "Something interferes with my scrying...",
		Success:     "You fixed the unfixable.",
	}, id)
}
