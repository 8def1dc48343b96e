package recommend

import "github.com/avelar/wordsight/internal/events"

// DemoCatalog is a small built-in word list so the CLI works standalone.
// Real hosts pass their own catalog through the engine facade.
func DemoCatalog() []Item {
	return []Item{
		{ID: "casa", Word: "casa", Difficulty: events.DifficultyEasy, Category: "home"},
		{ID: "perro", Word: "perro", Difficulty: events.DifficultyEasy, Category: "animals"},
		{ID: "gato", Word: "gato", Difficulty: events.DifficultyEasy, Category: "animals"},
		{ID: "manzana", Word: "manzana", Difficulty: events.DifficultyEasy, Category: "food"},
		{ID: "ventana", Word: "ventana", Difficulty: events.DifficultyMedium, Category: "home"},
		{ID: "cocina", Word: "cocina", Difficulty: events.DifficultyMedium, Category: "home"},
		{ID: "caballo", Word: "caballo", Difficulty: events.DifficultyMedium, Category: "animals"},
		{ID: "naranja", Word: "naranja", Difficulty: events.DifficultyMedium, Category: "food"},
		{ID: "biblioteca", Word: "biblioteca", Difficulty: events.DifficultyHard, Category: "places"},
		{ID: "desarrollo", Word: "desarrollo", Difficulty: events.DifficultyHard, Category: "abstract"},
		{ID: "mariposa", Word: "mariposa", Difficulty: events.DifficultyHard, Category: "animals"},
		{ID: "zanahoria", Word: "zanahoria", Difficulty: events.DifficultyHard, Category: "food"},
	}
}
