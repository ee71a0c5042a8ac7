// Package core implements the privileged entry/exit paths of the machine:
// the boot sequencer that establishes initial register state and hands off
// to the runtime, and the trap vector that saves and restores a register
// snapshot around every call to the external dispatcher.
//
// The trap vector trusts nothing it did not write itself. Before the stack
// is touched, the stack guard checks the incoming stack pointer against the
// platform RAM window; a pointer outside it is treated as unrecoverable
// corruption, reported with a two-byte console diagnostic, and the machine
// parks in a terminal state. The register snapshot layout is a single
// declarative list consumed forward on save and backward on restore.
package core
