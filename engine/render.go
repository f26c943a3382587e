package engine

import "github.com/nathoo/delver/types"

// Presenter receives render requests. The engine never draws by itself.
type Presenter interface {
	DrawTile(x, y int, t types.Tile, visible bool)
	DrawSprite(s types.Sprite)
}

// Render emits every tile and then every entity: remains first, then living
// monsters, then the player, so the player is never hidden.
func (e *Engine) Render(p Presenter) {
	g := e.State.Grid
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p.DrawTile(x, y, *g.At(x, y), e.Visible(x, y))
		}
	}

	player := e.State.Player
	for _, pass := range []func(*types.Entity) bool{
		func(ent *types.Entity) bool { return ent != player && !ent.Blocks },
		func(ent *types.Entity) bool { return ent != player && ent.Blocks },
	} {
		for _, ent := range e.State.Entities {
			if pass(ent) {
				p.DrawSprite(e.sprite(ent))
			}
		}
	}
	p.DrawSprite(e.sprite(player))
}

func (e *Engine) sprite(ent *types.Entity) types.Sprite {
	return types.Sprite{
		X:       ent.X,
		Y:       ent.Y,
		Glyph:   ent.Glyph,
		Color:   ent.Color,
		Visible: e.Visible(ent.X, ent.Y),
	}
}
