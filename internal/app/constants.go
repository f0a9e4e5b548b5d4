package app

// SeatsToStartHand is the number of occupied seats a table needs before a
// hand can be dealt. Euchre is always played four-handed.
const SeatsToStartHand = 4
