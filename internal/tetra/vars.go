package tetra

var (
	Debug = false // set to true for verbose debug output and march statistics
)
