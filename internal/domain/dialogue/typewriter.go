package dialogue

// Typewriter reveals a message one rune per tick.
// Lines are wrapped to the usable width as they are revealed; when the
// revealed lines no longer fit the usable height the oldest line scrolls out.
type Typewriter struct {
	interval  float64 // seconds per revealed rune
	maxHeight float64

	message  []rune
	revealed int
	clock    float64
	breaker  lineBreaker

	// OnReveal is called for every revealed rune (the blip sound)
	OnReveal func(r rune)
}

// NewTypewriter creates a typewriter for a box of maxWidth x maxHeight
func NewTypewriter(interval, maxWidth, maxHeight float64, m Measurer) *Typewriter {
	return &Typewriter{
		interval:  interval,
		maxHeight: maxHeight,
		breaker:   lineBreaker{maxWidth: maxWidth, measure: m},
	}
}

// SetMaxWidth changes the wrap width for runes revealed from now on
func (t *Typewriter) SetMaxWidth(w float64) { t.breaker.maxWidth = w }

// MaxWidth returns the wrap width
func (t *Typewriter) MaxWidth() float64 { return t.breaker.maxWidth }

// Start resets the buffer and begins revealing message
func (t *Typewriter) Start(message string) {
	t.message = []rune(message)
	t.revealed = 0
	t.clock = 0
	t.breaker.reset()
}

// Reset clears the buffer and forgets the message
func (t *Typewriter) Reset() {
	t.Start("")
}

// Update advances the wall clock by dt, revealing one rune per elapsed interval
func (t *Typewriter) Update(dt float64) {
	if t.Done() {
		return
	}
	if t.interval <= 0 {
		for !t.Done() {
			t.Tick()
		}
		return
	}
	t.clock += dt
	for t.clock >= t.interval && !t.Done() {
		t.clock -= t.interval
		t.Tick()
	}
}

// Tick reveals the next rune. Returns false when the message is complete.
func (t *Typewriter) Tick() bool {
	if t.Done() {
		return false
	}
	r := t.message[t.revealed]
	t.revealed++
	t.breaker.add(r)
	for t.overflowsHeight() && t.breaker.dropFirstLine() {
	}
	if t.OnReveal != nil {
		t.OnReveal(r)
	}
	return true
}

// SkipToEnd reveals the rest of the message at once without callbacks
func (t *Typewriter) SkipToEnd() {
	cb := t.OnReveal
	t.OnReveal = nil
	for t.Tick() {
	}
	t.OnReveal = cb
}

func (t *Typewriter) overflowsHeight() bool {
	if t.maxHeight <= 0 {
		return false
	}
	return float64(t.breaker.lines+1)*t.breaker.measure.LineHeight() > t.maxHeight
}

// Done reports the end-of-message flag
func (t *Typewriter) Done() bool { return t.revealed >= len(t.message) }

// Text returns the visible buffer
func (t *Typewriter) Text() string { return string(t.breaker.buf) }

// Revealed returns the number of runes revealed so far
func (t *Typewriter) Revealed() int { return t.revealed }

// Message returns the full message being revealed
func (t *Typewriter) Message() string { return string(t.message) }
