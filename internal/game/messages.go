package game

import "strconv"

// Fixed player-facing messages.
const (
	MsgStart        = "Guess the number between 1 and 100!"
	MsgPrompt       = "Please input your guess."
	MsgTooLow       = "Too small! Go higher."
	MsgTooHigh      = "Too big! Go lower."
	MsgCorrect      = "Correct! You win!"
	MsgInvalidInput = "Please enter a whole number between 1 and 100."
	MsgInterrupted  = "Interrupted. Exiting the game."
)

// ackMessage echoes an accepted guess back to the player.
func ackMessage(guess int) string {
	return "You guessed: " + strconv.Itoa(guess)
}
