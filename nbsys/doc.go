// Package nbsys defines the particle and system-view types shared by the
// connected-components split (package ccsplit) and the recursive evolver
// (package evolve).
//
// A System is never copied wholesale: every View is a window (a pair of
// index ranges) into one shared, caller-owned particle buffer. Splitting a
// view rearranges particles within that buffer by swapping and hands back
// new Views over the same backing storage; it never allocates particle
// storage itself. Scratch buffers used for task-parallel sub-evolution
// (package evolve) are the one place a View's particles are copied out of
// the shared buffer, and only for the lifetime of that task.
//
// A View keeps two contiguous ranges: massive particles (Mass != 0) and
// massless particles (Mass == 0). Either range may be empty. A non-empty
// NextCC list ends with a nil link; an empty list is represented by a head
// equal to the zero View (ZeroView). Components accepts either terminator.
package nbsys
