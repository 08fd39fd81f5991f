package game

import "snake-classic/game/types"

// Observer receives game notifications. Calls happen on the goroutine that
// changed the state, with the game lock released.
type Observer interface {
	ScoreChanged(score, highScore int)
	FoodEaten(score int)
	GameOver(score int, cause types.CollisionType, newHigh bool)
}

// NopObserver ignores every notification. Embed it to implement only the
// callbacks you need.
type NopObserver struct{}

func (NopObserver) ScoreChanged(int, int)                   {}
func (NopObserver) FoodEaten(int)                           {}
func (NopObserver) GameOver(int, types.CollisionType, bool) {}

type observers []Observer

func (o observers) scoreChanged(score, highScore int) {
	for _, obs := range o {
		obs.ScoreChanged(score, highScore)
	}
}

func (o observers) foodEaten(score int) {
	for _, obs := range o {
		obs.FoodEaten(score)
	}
}

func (o observers) gameOver(score int, cause types.CollisionType, newHigh bool) {
	for _, obs := range o {
		obs.GameOver(score, cause, newHigh)
	}
}
