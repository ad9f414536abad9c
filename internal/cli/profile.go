package cli

import (
	"context"
	"fmt"

	"github.com/lifelens/lifelens-cli/internal/models"
)

type ProfileCmd struct {
	Show   ProfileShowCmd   `cmd:"" help:"Show the backend profile." default:"1"`
	Save   ProfileSaveCmd   `cmd:"" help:"Create the personal record."`
	Update ProfileUpdateCmd `cmd:"" help:"Update personal fields."`
	Delete ProfileDeleteCmd `cmd:"" help:"Delete all backend data for this account."`
}

type ProfileShowCmd struct{}

func (c *ProfileShowCmd) Run(ctx *Context) error {
	profile, err := ctx.API.GetProfile(context.Background())
	if err != nil {
		return err
	}

	if profile.Empty() {
		fmt.Println("No profile yet. Run 'lifelens profile save' or 'lifelens plan create'.")
		return nil
	}

	w := newTabWriter()
	fmt.Fprintf(w, "Name:\t%s\n", strOrDash(profile.FullName))
	fmt.Fprintf(w, "Age:\t%s\n", intOrDash(profile.Age))
	fmt.Fprintf(w, "Gender:\t%s\n", strOrDash(profile.Gender))
	fmt.Fprintf(w, "Height:\t%s\n", intOrDash(profile.Height))
	fmt.Fprintf(w, "Weight:\t%s\n", intOrDash(profile.Weight))
	return w.Flush()
}

type ProfileSaveCmd struct {
	FullName string `help:"Full name."`
	Age      int    `help:"Age in years."`
	Gender   string `help:"Gender."`
	Height   int    `help:"Height in cm."`
	Weight   int    `help:"Weight in kg."`
}

func (c *ProfileSaveCmd) Run(ctx *Context) error {
	if err := ctx.API.SaveProfile(context.Background(), c.profile()); err != nil {
		return err
	}
	fmt.Println("Profile saved.")
	return nil
}

func (c *ProfileSaveCmd) profile() models.UserProfile {
	p := models.UserProfile{}
	if c.FullName != "" {
		p.FullName = &c.FullName
	}
	if c.Age != 0 {
		p.Age = &c.Age
	}
	if c.Gender != "" {
		p.Gender = &c.Gender
	}
	if c.Height != 0 {
		p.Height = &c.Height
	}
	if c.Weight != 0 {
		p.Weight = &c.Weight
	}
	return p
}

type ProfileUpdateCmd struct {
	FullName string `help:"Full name."`
	Age      int    `help:"Age in years."`
	Gender   string `help:"Gender."`
	Height   int    `help:"Height in cm."`
	Weight   int    `help:"Weight in kg."`
}

func (c *ProfileUpdateCmd) Run(ctx *Context) error {
	save := ProfileSaveCmd(*c)
	if err := ctx.API.UpdateProfile(context.Background(), save.profile()); err != nil {
		return err
	}
	fmt.Println("Profile updated.")
	return nil
}

type ProfileDeleteCmd struct {
	Yes bool `help:"Skip confirmation."`
}

func (c *ProfileDeleteCmd) Run(ctx *Context) error {
	if !c.Yes && !confirm("Delete ALL backend data for this account? This cannot be undone.") {
		fmt.Println("Aborted.")
		return nil
	}
	if err := ctx.API.DeleteUserData(context.Background()); err != nil {
		return err
	}
	fmt.Println("All backend data deleted.")
	return nil
}

func strOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func intOrDash(n *int) string {
	if n == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *n)
}
