package game

// Tick runs one ball step and returns the events it raised. It does
// nothing unless a match is running and no goal pause is pending.
//
// Walls, goals and paddles are checked in that order on every tick, and
// each check sees the effects of the ones before it.
func (g *Game) Tick() []Event {
	if g.status != StatusRunning || g.goalPending {
		return nil
	}
	g.tickEvents = nil

	g.ball.Move()
	g.checkWalls()
	g.checkGoal()
	g.checkPaddles()

	return g.tickEvents
}

// checkWalls bounces the ball off the top and bottom walls. Only a ball
// heading into the wall bounces, so a ball that is still overlapping the
// wall after a bounce does not flip back.
func (g *Game) checkWalls() {
	b := g.ball.Bounds()
	if (b.MinY() < 0 && g.ball.VY < 0) || (b.MaxY() > g.field.Height && g.ball.VY > 0) {
		g.ball.BounceVertical()
		g.emit(Event{Kind: EventWallBounce})
	}
}

// checkGoal scores once the ball has fully left through a side wall. A ball
// exactly on the edge is still in play.
func (g *Game) checkGoal() {
	b := g.ball.Bounds()
	switch {
	case b.MaxX() < 0:
		g.goal(Right)
	case b.MinX() > g.field.Width:
		g.goal(Left)
	}
}

func (g *Game) goal(scorer Side) {
	g.players[scorer].Score()
	g.resetSpeeds()

	// The ball comes back in from the side it left through.
	g.serve(scorer.Opponent())
	g.emit(Event{Kind: EventGoal, Side: scorer})

	g.log.Info("goal",
		"scorer", scorer,
		"left", g.players[Left].Points,
		"right", g.players[Right].Points)

	g.startGoalPause()
}

// checkPaddles bounces the ball off the paddle it is heading toward. At
// most one paddle is hit per tick.
func (g *Game) checkPaddles() {
	b := g.ball.Bounds()
	left, right := g.paddles[Left], g.paddles[Right]

	if g.ball.VX < 0 && b.Intersects(left.Bounds()) {
		g.hitPaddle(left)
	} else if g.ball.VX > 0 && b.Intersects(right.Bounds()) {
		g.hitPaddle(right)
	}
}

func (g *Game) hitPaddle(p *Paddle) {
	g.emit(Event{Kind: EventPaddleHit, Side: p.Side})
	g.ballSpeed *= g.settings.Acceleration
	g.paddleSpeed *= g.settings.Acceleration

	if g.options.AnglePaddle() {
		g.ball.Deflect(p.Y, p.Length)
	} else {
		g.ball.BounceHorizontal()
	}

	g.log.Debug("paddle hit",
		"side", p.Side,
		"ballSpeed", g.ballSpeed,
		"vx", g.ball.VX,
		"vy", g.ball.VY)
}

// movePaddles applies the held flags of both paddles once.
func (g *Game) movePaddles() {
	for _, p := range g.paddles {
		p.Move(PaddleStep)
	}
}
