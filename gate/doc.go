// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package gate implements the surveyor password gate.

A Gate compares a submitted password with the configured one. A correct
password unlocks the gate; a wrong one increments the attempt counter and
shows

	Incorrect password. N attempts remaining.

where N counts down from 3 and stops at 0. The message clears itself after
three seconds. The countdown is cosmetic: the correct password unlocks the
gate no matter how many attempts came before it.

Sessions maps browser session ids to gates so that each surveyor sees their
own countdown. Sessions idle for longer than the timeout are pruned when
new ones are created.
*/
package gate
