// Package session runs one player's inventory on a tcell screen: it maps
// input to inventory operations, keeps the selection and status line, and
// records a play summary when the player leaves.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"gridstash/internal/inventory"
	"gridstash/internal/item"
	"gridstash/internal/loot"
	"gridstash/internal/render"
	"gridstash/internal/world"

	"github.com/gdamore/tcell/v2"
)

var errNoLoot = errors.New("session: no loot generator")

// Options configures a Session. World and Logger default to a private
// world and slog.Default.
type Options struct {
	Name   string
	Grid   inventory.Config
	World  *world.World
	Loot   *loot.Generator
	Origin world.Position
	Logger *slog.Logger
}

// Session holds all per-player state for one connection. Every inventory
// call runs under mu, including observer callbacks.
type Session struct {
	mu     sync.Mutex
	name   string
	grid   *inventory.Grid
	world  *world.World
	loot   *loot.Generator
	origin world.Position
	logger *slog.Logger
	layout render.Layout

	view    render.View
	summary Summary
	started time.Time
}

// New allocates a Session with an empty inventory.
func New(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	w := opts.World
	if w == nil {
		w = world.New()
	}
	s := &Session{
		name:    opts.Name,
		grid:    inventory.New(opts.Grid, w),
		world:   w,
		loot:    opts.Loot,
		origin:  opts.Origin,
		logger:  logger,
		started: time.Now(),
	}
	s.layout = render.NewLayout(s.grid.Rows(), s.grid.Cols(), len(s.grid.EquipRefs()))
	if s.name != "" {
		s.view.Title = s.name + "'s stash"
	}
	s.summary.Player = s.name
	s.grid.Subscribe(s.observe)
	return s
}

func (s *Session) observe(ev inventory.Event) {
	switch ev := ev.(type) {
	case inventory.EquipmentRemoving:
		s.logger.Debug("unequipping", "player", s.name, "slot", ev.Ref.String())
	case inventory.EquipmentChanged:
		s.summary.EquipChanges++
	}
}

// Stock rolls n items into the inventory. Items without room fall to the
// ground at the session's origin.
func (s *Session) Stock(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < n; i++ {
		if _, _, err := s.rollLocked(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) rollLocked() (it *item.Item, stored bool, err error) {
	if s.loot == nil {
		return nil, false, errNoLoot
	}
	it, err = s.loot.Roll()
	if err != nil {
		return nil, false, err
	}
	if s.grid.AddItem(it) {
		return it, true, nil
	}
	s.world.Deposit(it, s.origin)
	return it, false, nil
}

// Apply performs one action and reports whether the session should keep
// running.
func (s *Session) Apply(a Action) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch a {
	case ActionQuit:
		return false
	case ActionMoveUp, ActionMoveDown, ActionMoveLeft, ActionMoveRight:
		s.move(actionToDelta(a))
	case ActionTogglePanel:
		if s.view.Panel == render.PanelGrid {
			s.view.Panel = render.PanelEquipment
		} else {
			s.view.Panel = render.PanelGrid
		}
	case ActionActivate:
		s.activate()
	case ActionDrop:
		s.drop()
	case ActionPickup:
		s.pickup()
	case ActionRoll:
		s.roll()
	}
	return true
}

// Click selects whatever is under screen position (x, y) and activates it.
func (s *Session) Click(x, y int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if row, col, ok := s.layout.ScreenToCell(x, y); ok {
		s.view.Panel = render.PanelGrid
		s.view.Row, s.view.Col = row, col
		s.activate()
		return
	}
	if i, ok := s.layout.ScreenToEquip(x, y); ok {
		s.view.Panel = render.PanelEquipment
		s.view.Equip = i
		s.activate()
	}
}

// move shifts the selection. Walking off the right edge of the grid enters
// the equipment panel; walking left out of it returns.
func (s *Session) move(drow, dcol int) {
	if s.view.Panel == render.PanelEquipment {
		if dcol < 0 {
			s.view.Panel = render.PanelGrid
			return
		}
		s.view.Equip = clamp(s.view.Equip+drow, 0, len(s.grid.EquipRefs())-1)
		return
	}
	if dcol > 0 && s.view.Col == s.grid.Cols()-1 {
		s.view.Panel = render.PanelEquipment
		return
	}
	s.view.Row = clamp(s.view.Row+drow, 0, s.grid.Rows()-1)
	s.view.Col = clamp(s.view.Col+dcol, 0, s.grid.Cols()-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (s *Session) activate() {
	if s.view.Panel == render.PanelEquipment {
		s.equip()
		return
	}
	before := s.grid.Held()
	res := s.grid.Swap(s.view.Row, s.view.Col)
	after := s.grid.Held()
	switch res {
	case inventory.SwapNothing:
		s.view.Status = "Nothing here."
	case inventory.SwapPicked:
		s.view.Status = fmt.Sprintf("Picked up %s.", after.Name)
	case inventory.SwapPlaced:
		s.view.Status = fmt.Sprintf("Placed %s.", before.Name)
	case inventory.SwapExchanged:
		s.view.Status = fmt.Sprintf("Swapped %s for %s.", before.Name, after.Name)
	case inventory.SwapOutOfBounds:
		s.view.Status = "That does not fit there."
	case inventory.SwapAmbiguous:
		s.view.Status = "Too many items in the way."
	}
	if res.Rejected() {
		s.reject("swap", res.String())
	} else if res != inventory.SwapNothing {
		s.summary.Swaps++
	}
}

func (s *Session) equip() {
	refs := s.grid.EquipRefs()
	ref := inventory.EquipRef{Role: inventory.RoleInventory}
	if s.view.Equip >= 0 && s.view.Equip < len(refs) {
		ref = refs[s.view.Equip]
	}
	before := s.grid.Held()
	res := s.grid.Equip(ref)
	after := s.grid.Held()
	switch res {
	case inventory.EquipNothing:
		s.view.Status = fmt.Sprintf("Nothing in %s.", ref)
	case inventory.EquipPicked:
		s.view.Status = fmt.Sprintf("Took %s off %s.", after.Name, ref)
	case inventory.EquipPlaced:
		s.view.Status = fmt.Sprintf("Equipped %s in %s.", before.Name, ref)
	case inventory.EquipExchanged:
		s.view.Status = fmt.Sprintf("Equipped %s, holding %s.", before.Name, after.Name)
	case inventory.EquipIncompatible:
		s.view.Status = fmt.Sprintf("%s cannot go in %s.", before.Name, ref)
	case inventory.EquipUnknownSlot:
		s.view.Status = "No such slot."
	}
	if res.Rejected() {
		s.reject("equip", res.String())
	} else if res != inventory.EquipNothing {
		s.summary.Equips++
	}
}

func (s *Session) drop() {
	held := s.grid.Held()
	if !s.grid.DropHeld(s.origin) {
		s.view.Status = "Nothing to drop."
		return
	}
	s.summary.Drops++
	s.view.Status = fmt.Sprintf("Dropped %s.", held.Name)
}

func (s *Session) pickup() {
	it, ok := s.world.Take(s.origin)
	if !ok {
		s.view.Status = "Nothing on the ground."
		return
	}
	switch {
	case s.grid.Held() == nil && s.grid.Hold(it):
		s.view.Status = fmt.Sprintf("Picked %s up.", it.Name)
	case s.grid.AddItem(it):
		s.view.Status = fmt.Sprintf("Stowed %s.", it.Name)
	default:
		s.world.Deposit(it, s.origin)
		s.view.Status = fmt.Sprintf("No room for %s.", it.Name)
		s.reject("pickup", "no room")
		return
	}
	s.summary.Pickups++
}

func (s *Session) roll() {
	it, stored, err := s.rollLocked()
	if err != nil {
		s.logger.Warn("loot roll failed", "player", s.name, "error", err)
		s.view.Status = "The loot table is empty."
		return
	}
	s.summary.Rolls++
	if stored {
		s.view.Status = fmt.Sprintf("Found %s.", it.Name)
		return
	}
	s.view.Status = fmt.Sprintf("No room; %s fell to the ground.", it.Name)
}

func (s *Session) reject(op, result string) {
	s.summary.Rejected++
	s.logger.Debug(op+" rejected", "player", s.name, "result", result)
}

// Summary returns a copy of the play statistics so far.
func (s *Session) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary
}

// Run draws the inventory on screen and handles input until the player
// quits or the screen closes. The summary is saved on return.
func (s *Session) Run(screen tcell.Screen) {
	r := render.NewRenderer(screen, s.grid.Rows(), s.grid.Cols(), len(s.grid.EquipRefs()))
	s.mu.Lock()
	cancel := s.grid.Subscribe(r.Observe)
	s.mu.Unlock()

	screen.EnableMouse()
	s.loop(screen, r)

	s.mu.Lock()
	cancel()
	s.mu.Unlock()
	s.finish()
}

func (s *Session) loop(screen tcell.Screen, r *render.Renderer) {
	var buttons tcell.ButtonMask
	for {
		s.draw(r)
		ev := screen.PollEvent()
		if ev == nil {
			return // screen closed / disconnected
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
			r.Invalidate()
		case *tcell.EventKey:
			if !s.Apply(keyToAction(ev)) {
				return
			}
		case *tcell.EventMouse:
			// Act on the press, not on drags or the release.
			pressed := ev.Buttons()&tcell.Button1 != 0 && buttons&tcell.Button1 == 0
			buttons = ev.Buttons()
			if pressed {
				s.Click(ev.Position())
			}
		}
	}
}

func (s *Session) draw(r *render.Renderer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.view
	v.Ground = len(s.world.DropsAt(s.origin))
	r.Draw(s.grid, v)
}

func (s *Session) finish() {
	s.mu.Lock()
	s.summary.Timestamp = time.Now().UTC()
	s.summary.ItemsAtExit = s.grid.Count()
	s.summary.DurationMilli = time.Since(s.started).Milliseconds()
	sum := s.summary
	s.mu.Unlock()

	s.logger.Info("session ended",
		"player", sum.Player,
		"swaps", sum.Swaps,
		"equips", sum.Equips,
		"drops", sum.Drops,
		"items", sum.ItemsAtExit,
	)
	saveSummary(sum, s.logger)
}
