package game

import "go.uber.org/zap"

// HandlePlayerDeaths consumes the death signals raised this frame.
// Every signal costs a life. While lives remain the player is put back at the origin;
// once they run out the session moves to GameOver and the player is left where it died.
func HandlePlayerDeaths(ctx *Context, signals int) error {
	if signals <= 0 {
		return nil
	}
	player, err := ctx.World.Player()
	if err != nil {
		return err
	}

	for i := 0; i < signals; i++ {
		lives := ctx.Scoreboard.LoseLife()
		ctx.Log.Info("player died",
			zap.Int("lives", lives),
			zap.Int("points", ctx.Scoreboard.Points),
			zap.String("session", ctx.Session.ID()),
		)

		if ctx.Scoreboard.Exhausted() {
			if err := ctx.Session.Request(PhaseGameOver); err != nil {
				return err
			}
			continue
		}

		player.Velocity = Vector2{}
		player.Rotation = FacingUp
		player.Position = Vector2{}
	}
	return nil
}
