package main

import "asteroids-backend/cmd"

func main() {
	cmd.Execute()
}
