package main

import (
	"time"

	"github.com/spf13/cobra"

	"meenakshitravels/client"
	"meenakshitravels/models"
)

var seedTestimonialData = []models.Testimonial{
	{
		Name:        "Asha",
		Location:    "Chennai",
		Content:     "Booked an airport drop at 4 AM and the cab arrived ten minutes early. Very dependable.",
		Rating:      5,
		ServiceType: "Airport Taxi",
	},
	{
		Name:        "Ramesh Kumar",
		Location:    "Madurai",
		Content:     "Took the Rameswaram temple package with my parents. The driver knew every darshan timing.",
		Rating:      5,
		ServiceType: "Temple Tour Packages",
	},
	{
		Name:        "Priya Venkatesan",
		Location:    "Coimbatore",
		Content:     "Clean Innova for our Ooty round trip, transparent billing at the end. Will book again.",
		Rating:      4,
		ServiceType: "Outstation Round Trips",
	},
	{
		Name:        "Suresh",
		Location:    "Trichy",
		Content:     "Our office has used their contract cabs for a year now. Trip sheets are always accurate.",
		Rating:      5,
		ServiceType: "Corporate Employee Transport",
	},
}

func newTestimonialsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "testimonials",
		Short: "Create the starter testimonials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := login(cmd.Context(), flags)
			if err != nil {
				return err
			}
			return seedTestimonials(cmd, c, flags.delay)
		},
	}
}

func seedTestimonials(cmd *cobra.Command, c *client.Client, delay time.Duration) error {
	created := 0
	for i := range seedTestimonialData {
		t := seedTestimonialData[i]
		if err := c.CreateTestimonial(cmd.Context(), &t); err != nil {
			cmd.Printf("testimonial from %q failed: %v\n", t.Name, err)
			continue
		}
		created++
		cmd.Printf("testimonial from %q created\n", t.Name)
		time.Sleep(delay)
	}
	cmd.Printf("testimonials: %d/%d created\n", created, len(seedTestimonialData))
	return nil
}
