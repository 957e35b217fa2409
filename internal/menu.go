package internal

import (
	"github.com/casbin/casbin/v2"
	casbinmodel "github.com/casbin/casbin/v2/model"

	"github.com/DrGermanius/Shopmart/internal/model"
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

const (
	ResourceOrders        = "orders"
	ResourceWallet        = "wallet"
	ResourceMessages      = "messages"
	ResourceNotifications = "notifications"
	ResourceShop          = "shop"
	ResourceShopOrders    = "shop_orders"
	ResourceProducts      = "products"
	ResourceUsers         = "users"
	ResourceAnalytics     = "analytics"

	ActionRead   = "read"
	ActionWrite  = "write"
	ActionManage = "manage"
)

var policies = [][]string{
	{model.RoleCustomer, ResourceOrders, ActionRead},
	{model.RoleCustomer, ResourceOrders, ActionWrite},
	{model.RoleCustomer, ResourceWallet, ActionRead},
	{model.RoleCustomer, ResourceWallet, ActionWrite},
	{model.RoleCustomer, ResourceMessages, ActionRead},
	{model.RoleCustomer, ResourceMessages, ActionWrite},
	{model.RoleCustomer, ResourceNotifications, ActionRead},
	{model.RoleCustomer, ResourceNotifications, ActionWrite},

	{model.RoleMerchant, ResourceOrders, ActionRead},
	{model.RoleMerchant, ResourceOrders, ActionWrite},
	{model.RoleMerchant, ResourceWallet, ActionRead},
	{model.RoleMerchant, ResourceWallet, ActionWrite},
	{model.RoleMerchant, ResourceMessages, ActionRead},
	{model.RoleMerchant, ResourceMessages, ActionWrite},
	{model.RoleMerchant, ResourceNotifications, ActionRead},
	{model.RoleMerchant, ResourceNotifications, ActionWrite},
	{model.RoleMerchant, ResourceShop, ActionRead},
	{model.RoleMerchant, ResourceShopOrders, ActionManage},
	{model.RoleMerchant, ResourceProducts, ActionManage},

	{model.RoleAdmin, ResourceOrders, ActionRead},
	{model.RoleAdmin, ResourceNotifications, ActionRead},
	{model.RoleAdmin, ResourceNotifications, ActionWrite},
	{model.RoleAdmin, ResourceShopOrders, ActionManage},
	{model.RoleAdmin, ResourceProducts, ActionManage},
	{model.RoleAdmin, ResourceUsers, ActionManage},
	{model.RoleAdmin, ResourceAnalytics, ActionRead},
}

type menuEntry struct {
	item     model.MenuItem
	resource string
	action   string
}

// Catalog order is the display order.
var menuCatalog = []menuEntry{
	{model.MenuItem{Label: "Orders", Path: "/dashboard/orders"}, ResourceOrders, ActionRead},
	{model.MenuItem{Label: "Track order", Path: "/track-order"}, ResourceOrders, ActionRead},
	{model.MenuItem{Label: "Balance", Path: "/dashboard/balance"}, ResourceWallet, ActionRead},
	{model.MenuItem{Label: "Messages", Path: "/dashboard/messages"}, ResourceMessages, ActionRead},
	{model.MenuItem{Label: "Notifications", Path: "/dashboard/notifications"}, ResourceNotifications, ActionRead},
	{model.MenuItem{Label: "My shop", Path: "/dashboard/shop"}, ResourceShop, ActionRead},
	{model.MenuItem{Label: "Shop products", Path: "/dashboard/shop/products"}, ResourceProducts, ActionManage},
	{model.MenuItem{Label: "Shop orders", Path: "/dashboard/shop/orders"}, ResourceShopOrders, ActionManage},
	{model.MenuItem{Label: "Shop messages", Path: "/dashboard/shop/messages"}, ResourceShop, ActionRead},
	{model.MenuItem{Label: "Analytics", Path: "/admin/analytics"}, ResourceAnalytics, ActionRead},
	{model.MenuItem{Label: "Users", Path: "/admin/users"}, ResourceUsers, ActionManage},
	{model.MenuItem{Label: "Stores", Path: "/admin/stores"}, ResourceUsers, ActionManage},
	{model.MenuItem{Label: "Products", Path: "/admin/products"}, ResourceProducts, ActionManage},
	{model.MenuItem{Label: "All orders", Path: "/admin/orders"}, ResourceShopOrders, ActionManage},
}

// Capabilities answers what a role may do. The policy is fixed at construction.
type Capabilities struct {
	enforcer *casbin.Enforcer
}

func NewCapabilities() (*Capabilities, error) {
	m, err := casbinmodel.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	if _, err = e.AddPolicies(policies); err != nil {
		return nil, err
	}
	return &Capabilities{enforcer: e}, nil
}

func (c *Capabilities) Can(role, resource, action string) bool {
	ok, err := c.enforcer.Enforce(role, resource, action)
	return err == nil && ok
}

// MenuFor builds a fresh menu for role; unknown roles get an empty menu.
func (c *Capabilities) MenuFor(role string) []model.MenuItem {
	menu := make([]model.MenuItem, 0, len(menuCatalog))
	for _, e := range menuCatalog {
		if c.Can(role, e.resource, e.action) {
			menu = append(menu, e.item)
		}
	}
	return menu
}
