package arcade

import "time"

// cycleTime is the nominal Intel 8080 clock period the pacing loop
// assumes: one clock cycle is 480 ns (about 2.08 MHz).
const cycleTime = 480 * time.Nanosecond

// interruptInterval is the spacing between the two per-frame
// interrupts. The reference implementation's two known revisions
// disagree (8000 µs vs 8333 µs); 8333 µs is the exact half of a
// 60 Hz frame (1/120 s) and is what this interpreter uses — the ROM
// tolerates either, per §6.
const interruptInterval = 8333 * time.Microsecond
