package main

import "github.com/JackSaady/photo-pricing-compass/cmd"

func main() {
	cmd.Execute()
}
