package console

import (
	"context"
	"strings"

	"porter/internal/core/application/usecases/commands"
	"porter/internal/core/application/usecases/queries"
	"porter/internal/core/domain/model/account"
	"porter/internal/core/domain/model/driver"
	"porter/internal/pkg/errs"
)

func (c *Console) signup(ctx context.Context, args string) error {
	fields := splitFields(args)
	if len(fields) != 7 {
		return errs.NewValueIsRequiredError(
			"signup fields name|email|phone|vehicle type|vehicle number|license number|password")
	}

	cmd, err := commands.NewRegisterDriverCommand(
		fields[0], fields[1], fields[2], fields[3], fields[4], fields[5], fields[6],
	)
	if err != nil {
		return err
	}

	acc, err := c.handlers.RegisterDriver.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	c.printf("registered %s <%s>, account is %s\n", acc.Name(), acc.Email(), acc.Status())
	return nil
}

func (c *Console) approve(ctx context.Context, args string) error {
	return c.review(ctx, args, account.Approved)
}

func (c *Console) suspend(ctx context.Context, args string) error {
	return c.review(ctx, args, account.Suspended)
}

func (c *Console) review(ctx context.Context, email string, decision account.Status) error {
	cmd, err := commands.NewReviewAccountCommand(email, decision)
	if err != nil {
		return err
	}

	acc, err := c.handlers.ReviewAccount.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	c.printf("account %s is now %s\n", acc.Email(), acc.Status())
	return nil
}

func (c *Console) login(ctx context.Context, args string) error {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		return errs.NewValueIsRequiredError("email and password")
	}

	cmd, err := commands.NewAuthenticateCommand(fields[0], fields[1])
	if err != nil {
		return err
	}

	session, err := c.handlers.Authenticate.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	c.printf("welcome back, %s (session valid until %s)\n",
		session.Account().Name(), session.ExpiresAt().Format("15:04"))
	return nil
}

func (c *Console) logout(ctx context.Context, _ string) error {
	if err := c.handlers.EndSession.Handle(ctx, commands.NewEndSessionCommand()); err != nil {
		return err
	}
	c.lastOrders, c.lastNotifications = nil, nil
	c.print("logged out\n")
	return nil
}

func (c *Console) whoami(ctx context.Context, _ string) error {
	session, err := c.handlers.CurrentSession.Handle(ctx, queries.NewGetCurrentSessionQuery())
	if err != nil {
		return err
	}
	c.printf("%s <%s> %s, %s, license %s\n",
		session.Name, session.Email, session.Phone, session.Vehicle, session.License)
	return nil
}

// profile shows the driver record, or applies key=value updates.
func (c *Console) profile(ctx context.Context, args string) error {
	if args == "" {
		d, err := c.handlers.Driver.Handle(ctx, queries.NewGetDriverQuery())
		if err != nil {
			return err
		}
		c.printDriver(d)
		return nil
	}

	update, err := parseProfileUpdate(args)
	if err != nil {
		return err
	}

	acc, err := c.handlers.UpdateProfile.Handle(ctx, commands.NewUpdateProfileCommand(update))
	if err != nil {
		return err
	}

	c.printf("profile updated: %s, %s, %s\n", acc.Name(), acc.Phone(), acc.Vehicle())
	return nil
}

func parseProfileUpdate(args string) (account.ProfileUpdate, error) {
	var update account.ProfileUpdate
	for _, field := range splitFields(args) {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			return account.ProfileUpdate{}, errs.NewValueIsInvalidError(field)
		}
		value = strings.TrimSpace(value)

		switch strings.ToLower(strings.TrimSpace(key)) {
		case "name":
			update.Name = &value
		case "phone":
			update.Phone = &value
		case "vehicle_type":
			update.VehicleType = &value
		case "vehicle_number":
			update.VehicleNumber = &value
		default:
			return account.ProfileUpdate{}, errs.NewValueIsInvalidError(key)
		}
	}
	return update, nil
}

func (c *Console) toggle(ctx context.Context, _ string) error {
	status, err := c.handlers.ToggleStatus.Handle(ctx, commands.NewToggleDriverStatusCommand())
	if err != nil {
		return err
	}
	c.printf("you are %s\n", status)
	return nil
}

func (c *Console) status(ctx context.Context, args string) error {
	target, err := driver.ParseStatus(args)
	if err != nil {
		return err
	}

	cmd, err := commands.NewSetDriverStatusCommand(target)
	if err != nil {
		return err
	}

	status, err := c.handlers.SetStatus.Handle(ctx, cmd)
	if err != nil {
		return err
	}
	c.printf("you are %s\n", status)
	return nil
}

func (c *Console) move(ctx context.Context, args string) error {
	location, err := parseLocation(args)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateDriverLocationCommand(location)
	if err != nil {
		return err
	}

	if err = c.handlers.UpdateLocation.Handle(ctx, cmd); err != nil {
		return err
	}
	c.printf("location set to %s\n", location.Address())
	return nil
}

func (c *Console) printDriver(d queries.DriverResponse) {
	c.printf("%s <%s> %s\n", d.Name, d.Email, d.Phone)
	c.printf("  vehicle   %s\n", d.Vehicle)
	c.printf("  status    %s\n", d.Status)
	c.printf("  rating    %.1f\n", d.Rating)
	c.printf("  lifetime  %d deliveries, $%.2f\n", d.TotalDeliveries, d.TotalEarnings)
	if d.Location != nil {
		c.printf("  location  %s\n", d.Location.Address())
	}
}
