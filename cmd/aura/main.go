package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Nickgiresse/aurastyle/internal/bootstrap"
	admindto "github.com/Nickgiresse/aurastyle/internal/modules/admin/dto"
	cartdto "github.com/Nickgiresse/aurastyle/internal/modules/cart/dto"
	catalogdto "github.com/Nickgiresse/aurastyle/internal/modules/catalog/dto"
	"github.com/Nickgiresse/aurastyle/internal/platform/config"
	apperrors "github.com/Nickgiresse/aurastyle/internal/platform/errors"
)

func cartProductInput(p catalogdto.ProductOutput) cartdto.ProductInput {
	return cartdto.ProductInput{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Category: p.Category,
		Image:    p.Image,
	}
}

func printCart(cmd *cobra.Command, cart cartdto.CartOutput) {
	if len(cart.Items) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "cart is empty")
		return
	}
	for _, line := range cart.Items {
		size := line.Size
		if size == "" {
			size = "-"
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t×%d\t%.0f FCFA\n", line.ProductID, line.Name, size, line.Quantity, line.Subtotal)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d article(s), total %.0f FCFA\n", cart.ItemCount, cart.Total)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var profilePath string

	root := &cobra.Command{
		Use:           "aura",
		Short:         "AuraStyle boutique client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&profilePath, "profile", config.DefaultProfilePath(), "profile directory")

	root.AddCommand(newTUICmd(&profilePath))
	root.AddCommand(newLoginCmd(&profilePath))
	root.AddCommand(newRegisterCmd(&profilePath))
	root.AddCommand(newLogoutCmd(&profilePath))
	root.AddCommand(newWhoamiCmd(&profilePath))
	root.AddCommand(newShopCmd(&profilePath))
	root.AddCommand(newCartCmd(&profilePath))
	root.AddCommand(newCheckoutCmd(&profilePath))
	root.AddCommand(newOrdersCmd(&profilePath))
	root.AddCommand(newAccountCmd(&profilePath))
	root.AddCommand(newAdminCmd(&profilePath))
	return root
}

func loadApp(profilePath string) (*bootstrap.App, error) {
	cfg, err := config.New(profilePath)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(profilePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the boutique terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*profilePath)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}

func newLoginCmd(profilePath *string) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login --email <email> --password <password>",
		Short: "Sign in and persist the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(email) == "" || password == "" {
				return fmt.Errorf("--email and --password are required")
			}
			app, err := loadApp(*profilePath)
			if err != nil {
				return err
			}
			out, err := app.AuthCLI.Login(context.Background(), email, password)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s %s <%s>\n", out.FirstName, out.LastName, out.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}

func newRegisterCmd(profilePath *string) *cobra.Command {
	var firstName, lastName, email, phone, password string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*profilePath)
			if err != nil {
				return err
			}
			out, err := app.AuthCLI.Register(context.Background(), firstName, lastName, email, phone, password)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "welcome %s %s <%s>\n", out.FirstName, out.LastName, out.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}

func newLogoutCmd(profilePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*profilePath)
			if err != nil {
				return err
			}
			if err := app.AuthCLI.Logout(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func newWhoamiCmd(profilePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*profilePath)
			if err != nil {
				return err
			}
			out, err := app.AuthCLI.Whoami(context.Background())
			if errors.Is(err, apperrors.ErrNotAuthenticated) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "guest (not signed in)")
				return nil
			}
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s <%s> admin=%t\n", out.FirstName, out.LastName, out.Email, out.IsAdmin)
			return nil
		},
	}
}

func newShopCmd(profilePath *string) *cobra.Command {
	shop := &cobra.Command{Use: "shop", Short: "Browse the catalogue"}

	var category, sort string
	var page, limit int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*profilePath)
			if err != nil {
				return err
			}
			out, err := app.CatalogCLI.List(context.Background(), category, sort, page, limit)
			if err != nil {
				return err
			}
			if len(out.Products) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no products")
				return nil
			}
			for _, p := range out.Products {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.0f FCFA\t%s\n", p.ID, p.Name, p.Price, p.Category)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "page %d/%d (%d products)\n", out.Page, out.Pages, out.Total)
			return nil
		},
	}
	listCmd.Flags().StringVar(&category, "category", "", "filter by category")
	listCmd.Flags().StringVar(&sort, "sort", "", "sort: price-asc|price-desc|newest")
	listCmd.Flags().IntVar(&page, "page", 1, "page number")
	listCmd.Flags().IntVar(&limit, "limit", 20, "items per page")
	shop.AddCommand(listCmd)

	var productID string
	showCmd := &cobra.Command{
		Use:   "show --id <id>",
		Short: "Show product details",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(productID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*profilePath)
			if err != nil {
				return err
			}
			p, err := app.CatalogCLI.Get(context.Background(), productID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "id: %s\nname: %s\nprice: %.0f FCFA\ncategory: %s\nsizes: %s\nstock: %d\nactive: %t\n",
				p.ID, p.Name, p.Price, p.Category, strings.Join(p.Sizes, ","), p.Stock, p.IsActive)
			if p.Description != "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), p.Description)
			}
			return nil
		},
	}
	showCmd.Flags().StringVar(&productID, "id", "", "product id")
	shop.AddCommand(showCmd)

	shop.AddCommand(&cobra.Command{
		Use:   "search <query>",
		Short: "Search products by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*profilePath)
			if err != nil {
				return err
			}
			products, err := app.CatalogCLI.Search(context.Background(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if len(products) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no matches")
				return nil
			}
			for _, p := range products {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.0f FCFA\n", p.ID, p.Name, p.Price)
			}
			return nil
		},
	})

	shop.AddCommand(&cobra.Command{
		Use:   "cached",
		Short: "List the last fetched products without the backend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*profilePath)
			if err != nil {
				return err
			}
			products, err := app.CatalogCLI.Cached(context.Background())
			if err != nil {
				return err
			}
			if len(products) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "nothing cached yet; run `aura shop list` while online")
				return nil
			}
			for _, p := range products {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.0f FCFA\t%s\n", p.ID, p.Name, p.Price, p.Category)
			}
			return nil
		},
	})

	shop.AddCommand(&cobra.Command{
		Use:   "categories",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*profilePath)
			if err != nil {
				return err
			}
			categories, err := app.CatalogCLI.Categories(context.Background())
			if err != nil {
				return err
			}
			if len(categories) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no categories")
				return nil
			}
			for _, c := range categories {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", c.ID, c.Name)
			}
			return nil
		},
	})

	return shop
}

func newCartCmd(profilePath *string) *cobra.Command {
	cart := &cobra.Command{Use: "cart", Short: "Manage the cart"}

	var addID, addSize string
	var addQty int
	addCmd := &cobra.Command{
		Use:   "add --id <product-id>",
		Short: "Add a product to the cart",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(addID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*profilePath)
			if err != nil {
				return err
			}
			ctx := context.Background()
			product, err := app.CatalogCLI.Get(ctx, addID)
			if err != nil {
				return err
			}
			size := addSize
			if size == "" && len(product.Sizes) > 0 {
				size = product.Sizes[0]
			}
			out, err := app.CartCLI.Add(ctx, cartProductInput(product), addQty, size)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s ×%d (%s)\n", product.Name, addQty, size)
			printCart(cmd, out)
			return nil
		},
	}
	addCmd.Flags().StringVar(&addID, "id", "", "product id")
	addCmd.Flags().IntVar(&addQty, "qty", 1, "quantity")
	addCmd.Flags().StringVar(&addSize, "size", "", "size (defaults to first available)")
	cart.AddCommand(addCmd)

	var removeID, removeSize string
	removeCmd := &cobra.Command{
		Use:   "remove --id <product-id>",
		Short: "Remove a cart line",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(removeID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*profilePath)
			if err != nil {
				return err
			}
			out, err := app.CartCLI.Remove(context.Background(), removeID, removeSize)
			if err != nil {
				return err
			}
			printCart(cmd, out)
			return nil
		},
	}
	removeCmd.Flags().StringVar(&removeID, "id", "", "product id")
	removeCmd.Flags().StringVar(&removeSize, "size", "", "size of the line to remove")
	cart.AddCommand(removeCmd)

	var updateID, updateSize string
	var updateQty int
	updateCmd := &cobra.Command{
		Use:   "update --id <product-id> --qty <n>",
		Short: "Set the quantity of a cart line",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(updateID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*profilePath)
			if err != nil {
				return err
			}
			out, err := app.CartCLI.SetQuantity(context.Background(), updateID, updateQty, updateSize)
			if err != nil {
				return err
			}
			printCart(cmd, out)
			return nil
		},
	}
	updateCmd.Flags().StringVar(&updateID, "id", "", "product id")
	updateCmd.Flags().IntVar(&updateQty, "qty", 1, "new quantity (0 removes the line)")
	updateCmd.Flags().StringVar(&updateSize, "size", "", "size of the line")
	cart.AddCommand(updateCmd)

	cart.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*profilePath)
			if err != nil {
				return err
			}
			if err := app.CartCLI.Clear(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "cart cleared")
			return nil
		},
	})

	cart.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the cart",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*profilePath)
			if err != nil {
				return err
			}
			out, err := app.CartCLI.Show(context.Background())
			if err != nil {
				return err
			}
			printCart(cmd, out)
			return nil
		},
	})

	return cart
}

func newCheckoutCmd(profilePath *string) *cobra.Command {
	var firstName, lastName, phone, city, street, promo string
	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Place the order and print the WhatsApp handoff link",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*profilePath)
			if err != nil {
				return err
			}
			out, err := app.OrderCLI.Checkout(context.Background(), firstName, lastName, phone, city, street, promo)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "order %s placed\n", out.OrderID)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "subtotal: %.0f FCFA\n", out.Subtotal)
			if out.Discount > 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "discount: -%.0f FCFA\n", out.Discount)
			}
			if out.Shipping > 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "shipping: %.0f FCFA\n", out.Shipping)
			} else {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "shipping: free")
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "total: %.0f FCFA\n", out.Total)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.WhatsAppURL)
			return nil
		},
	}
	cmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&city, "city", "", "delivery city")
	cmd.Flags().StringVar(&street, "street", "", "delivery street")
	cmd.Flags().StringVar(&promo, "promo", "", "promo code")
	return cmd
}

func newOrdersCmd(profilePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "orders",
		Short: "List my orders",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*profilePath)
			if err != nil {
				return err
			}
			orders, err := app.OrderCLI.ListMine(context.Background())
			if err != nil {
				return err
			}
			if len(orders) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no orders")
				return nil
			}
			for _, o := range orders {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.0f FCFA\t%s\n", o.ID, o.Status, o.Total, o.CreatedAt.Format(time.RFC3339))
			}
			return nil
		},
	}
}

func newAccountCmd(profilePath *string) *cobra.Command {
	account := &cobra.Command{Use: "account", Short: "Manage my account"}

	account.AddCommand(&cobra.Command{
		Use:   "profile",
		Short: "Show my profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*profilePath)
			if err != nil {
				return err
			}
			p, err := app.AccountCLI.Profile(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "name: %s %s\nemail: %s\nphone: %s\n", p.FirstName, p.LastName, p.Email, p.Phone)
			if p.Address.Street != "" || p.Address.City != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "address: %s, %s %s, %s\n", p.Address.Street, p.Address.Zip, p.Address.City, p.Address.Country)
			}
			return nil
		},
	})

	var firstName, lastName, email, phone string
	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "Update profile fields",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*profilePath)
			if err != nil {
				return err
			}
			p, err := app.AccountCLI.UpdateProfile(context.Background(), firstName, lastName, email, phone)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "profile updated: %s %s <%s>\n", p.FirstName, p.LastName, p.Email)
			return nil
		},
	}
	updateCmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	updateCmd.Flags().StringVar(&lastName, "last-name", "", "last name")
	updateCmd.Flags().StringVar(&email, "email", "", "email")
	updateCmd.Flags().StringVar(&phone, "phone", "", "phone number")
	account.AddCommand(updateCmd)

	var currentPassword, newPassword string
	passwordCmd := &cobra.Command{
		Use:   "password --current <pw> --new <pw>",
		Short: "Change my password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if currentPassword == "" || newPassword == "" {
				return fmt.Errorf("--current and --new are required")
			}
			app, err := loadApp(*profilePath)
			if err != nil {
				return err
			}
			if err := app.AccountCLI.UpdatePassword(context.Background(), currentPassword, newPassword); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "password updated")
			return nil
		},
	}
	passwordCmd.Flags().StringVar(&currentPassword, "current", "", "current password")
	passwordCmd.Flags().StringVar(&newPassword, "new", "", "new password")
	account.AddCommand(passwordCmd)

	var street, city, zip, country string
	addressCmd := &cobra.Command{
		Use:   "address",
		Short: "Update my delivery address",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*profilePath)
			if err != nil {
				return err
			}
			if err := app.AccountCLI.UpdateAddress(context.Background(), street, city, zip, country); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "address updated")
			return nil
		},
	}
	addressCmd.Flags().StringVar(&street, "street", "", "street")
	addressCmd.Flags().StringVar(&city, "city", "", "city")
	addressCmd.Flags().StringVar(&zip, "zip", "", "postal code")
	addressCmd.Flags().StringVar(&country, "country", "", "country")
	account.AddCommand(addressCmd)

	wishlist := &cobra.Command{Use: "wishlist", Short: "Manage my wishlist"}
	wishlist.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List wishlist items",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*profilePath)
			if err != nil {
				return err
			}
			items, err := app.AccountCLI.Wishlist(context.Background())
			if err != nil {
				return err
			}
			if len(items) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "wishlist is empty")
				return nil
			}
			for _, item := range items {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.0f FCFA\n", item.ID, item.Name, item.Price)
			}
			return nil
		},
	})

	var wishAddID string
	wishAdd := &cobra.Command{
		Use:   "add --id <product-id>",
		Short: "Add a product to the wishlist",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(wishAddID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*profilePath)
			if err != nil {
				return err
			}
			if err := app.AccountCLI.AddToWishlist(context.Background(), wishAddID); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "added to wishlist")
			return nil
		},
	}
	wishAdd.Flags().StringVar(&wishAddID, "id", "", "product id")
	wishlist.AddCommand(wishAdd)

	var wishRemoveID string
	wishRemove := &cobra.Command{
		Use:   "remove --id <product-id>",
		Short: "Remove a product from the wishlist",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(wishRemoveID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*profilePath)
			if err != nil {
				return err
			}
			if err := app.AccountCLI.RemoveFromWishlist(context.Background(), wishRemoveID); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "removed from wishlist")
			return nil
		},
	}
	wishRemove.Flags().StringVar(&wishRemoveID, "id", "", "product id")
	wishlist.AddCommand(wishRemove)
	account.AddCommand(wishlist)

	return account
}

func newAdminCmd(profilePath *string) *cobra.Command {
	admin := &cobra.Command{Use: "admin", Short: "Back-office operations (admin only)"}

	product := &cobra.Command{Use: "product", Short: "Manage products"}
	product.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all products",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*profilePath)
			if err != nil {
				return err
			}
			products, err := app.AdminCLI.ListProducts(context.Background())
			if err != nil {
				return err
			}
			for _, p := range products {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.0f FCFA\tstock=%d\tactive=%t\n", p.ID, p.Name, p.Price, p.Stock, p.IsActive)
			}
			return nil
		},
	})

	var draft productFlags
	createProduct := &cobra.Command{
		Use:   "create --name <name> --price <price> --category <id>",
		Short: "Create a product",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*profilePath)
			if err != nil {
				return err
			}
			p, err := app.AdminCLI.CreateProduct(context.Background(), draft.toInput())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s)\n", p.Name, p.ID)
			return nil
		},
	}
	draft.register(createProduct)
	product.AddCommand(createProduct)

	var updateProductID string
	var updateDraft productFlags
	updateProduct := &cobra.Command{
		Use:   "update --id <id>",
		Short: "Update a product",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(updateProductID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*profilePath)
			if err != nil {
				return err
			}
			p, err := app.AdminCLI.UpdateProduct(context.Background(), updateProductID, updateDraft.toInput())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "updated %s (%s)\n", p.Name, p.ID)
			return nil
		},
	}
	updateProduct.Flags().StringVar(&updateProductID, "id", "", "product id")
	updateDraft.register(updateProduct)
	product.AddCommand(updateProduct)

	var deleteProductID string
	deleteProduct := &cobra.Command{
		Use:   "delete --id <id>",
		Short: "Delete a product",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(deleteProductID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*profilePath)
			if err != nil {
				return err
			}
			if err := app.AdminCLI.DeleteProduct(context.Background(), deleteProductID); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "product deleted")
			return nil
		},
	}
	deleteProduct.Flags().StringVar(&deleteProductID, "id", "", "product id")
	product.AddCommand(deleteProduct)
	admin.AddCommand(product)

	category := &cobra.Command{Use: "category", Short: "Manage categories"}
	category.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*profilePath)
			if err != nil {
				return err
			}
			categories, err := app.AdminCLI.ListCategories(context.Background())
			if err != nil {
				return err
			}
			for _, c := range categories {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", c.ID, c.Name)
			}
			return nil
		},
	})

	var categoryName, categoryImage string
	createCategory := &cobra.Command{
		Use:   "create --name <name>",
		Short: "Create a category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(categoryName) == "" {
				return fmt.Errorf("--name is required")
			}
			app, err := loadApp(*profilePath)
			if err != nil {
				return err
			}
			c, err := app.AdminCLI.CreateCategory(context.Background(), categoryName, categoryImage)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s)\n", c.Name, c.ID)
			return nil
		},
	}
	createCategory.Flags().StringVar(&categoryName, "name", "", "category name")
	createCategory.Flags().StringVar(&categoryImage, "image", "", "category image URL")
	category.AddCommand(createCategory)

	var deleteCategoryID string
	deleteCategory := &cobra.Command{
		Use:   "delete --id <id>",
		Short: "Delete a category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(deleteCategoryID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*profilePath)
			if err != nil {
				return err
			}
			if err := app.AdminCLI.DeleteCategory(context.Background(), deleteCategoryID); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "category deleted")
			return nil
		},
	}
	deleteCategory.Flags().StringVar(&deleteCategoryID, "id", "", "category id")
	category.AddCommand(deleteCategory)
	admin.AddCommand(category)

	order := &cobra.Command{Use: "order", Short: "Manage orders"}
	order.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all orders",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*profilePath)
			if err != nil {
				return err
			}
			orders, err := app.AdminCLI.ListOrders(context.Background())
			if err != nil {
				return err
			}
			for _, o := range orders {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%.0f FCFA\t%s\n", o.ID, o.Customer, o.Status, o.Total, o.CreatedAt.Format(time.RFC3339))
			}
			return nil
		},
	})

	var orderID, orderStatus string
	statusCmd := &cobra.Command{
		Use:   "status --id <id> --status <status>",
		Short: "Update an order's status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(orderID) == "" || strings.TrimSpace(orderStatus) == "" {
				return fmt.Errorf("--id and --status are required")
			}
			app, err := loadApp(*profilePath)
			if err != nil {
				return err
			}
			o, err := app.AdminCLI.UpdateOrderStatus(context.Background(), orderID, orderStatus)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "order %s is now %s\n", o.ID, o.Status)
			return nil
		},
	}
	statusCmd.Flags().StringVar(&orderID, "id", "", "order id")
	statusCmd.Flags().StringVar(&orderStatus, "status", "", "pending|confirmed|shipped|delivered|cancelled")
	order.AddCommand(statusCmd)
	admin.AddCommand(order)

	user := &cobra.Command{Use: "user", Short: "Manage users"}
	user.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*profilePath)
			if err != nil {
				return err
			}
			users, err := app.AdminCLI.ListUsers(context.Background())
			if err != nil {
				return err
			}
			for _, u := range users {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s %s\t%s\tadmin=%t\n", u.ID, u.FirstName, u.LastName, u.Email, u.IsAdmin)
			}
			return nil
		},
	})

	var userID, userFirstName, userLastName, userEmail, userPhone string
	var userAdmin bool
	updateUser := &cobra.Command{
		Use:   "update --id <id>",
		Short: "Update a user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(userID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*profilePath)
			if err != nil {
				return err
			}
			input := admindto.UserUpdateInput{
				FirstName: userFirstName,
				LastName:  userLastName,
				Email:     userEmail,
				Phone:     userPhone,
			}
			if cmd.Flags().Changed("admin") {
				input.IsAdmin = &userAdmin
			}
			u, err := app.AdminCLI.UpdateUser(context.Background(), userID, input)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "updated %s %s admin=%t\n", u.FirstName, u.LastName, u.IsAdmin)
			return nil
		},
	}
	updateUser.Flags().StringVar(&userID, "id", "", "user id")
	updateUser.Flags().StringVar(&userFirstName, "first-name", "", "first name")
	updateUser.Flags().StringVar(&userLastName, "last-name", "", "last name")
	updateUser.Flags().StringVar(&userEmail, "email", "", "email")
	updateUser.Flags().StringVar(&userPhone, "phone", "", "phone")
	updateUser.Flags().BoolVar(&userAdmin, "admin", false, "grant or revoke admin")
	user.AddCommand(updateUser)
	admin.AddCommand(user)

	admin.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Show store statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*profilePath)
			if err != nil {
				return err
			}
			stats, err := app.AdminCLI.Stats(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "revenue: %.0f FCFA\norders: %d\nusers: %d\nproducts: %d\n",
				stats.Revenue, stats.Orders, stats.Users, stats.Products)
			return nil
		},
	})

	return admin
}

type productFlags struct {
	name        string
	price       float64
	category    string
	image       string
	badge       string
	description string
	subTitle    string
	sizes       []string
	stock       int
	active      bool
}

func (f *productFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "product name")
	cmd.Flags().Float64Var(&f.price, "price", 0, "price in FCFA")
	cmd.Flags().StringVar(&f.category, "category", "", "category id")
	cmd.Flags().StringVar(&f.image, "image", "", "image URL")
	cmd.Flags().StringVar(&f.badge, "badge", "", "badge label")
	cmd.Flags().StringVar(&f.description, "description", "", "description")
	cmd.Flags().StringVar(&f.subTitle, "subtitle", "", "subtitle")
	cmd.Flags().StringSliceVar(&f.sizes, "sizes", nil, "available sizes")
	cmd.Flags().IntVar(&f.stock, "stock", 0, "stock count")
	cmd.Flags().BoolVar(&f.active, "active", true, "product is active")
}

func (f productFlags) toInput() admindto.ProductDraftInput {
	return admindto.ProductDraftInput{
		Name:        f.name,
		Price:       f.price,
		Category:    f.category,
		Image:       f.image,
		Badge:       f.badge,
		Description: f.description,
		SubTitle:    f.subTitle,
		Sizes:       f.sizes,
		Stock:       f.stock,
		IsActive:    f.active,
	}
}
